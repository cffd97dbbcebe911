package errs

import "strings"

// FieldError is one field-level validation error.
//
//	{"field": "email", "error": "must be a valid email address"}
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type the global error handler serializes for API
// responses.
//
//   - Code: machine-friendly error code, e.g. "BAD_REQUEST"
//   - Message: human-friendly message
//   - Status: HTTP status code
//   - Errors: optional per-field validation errors
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is treats any *HTTPError as a match so errors.Is can test for the type
// without comparing contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this error with only the message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// CodeFromStatusText converts HTTP status text into a stable machine code,
// e.g. "Bad Request" becomes "BAD_REQUEST".
func CodeFromStatusText(text string) string {
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
