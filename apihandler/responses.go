package apihandler

import "github.com/nmoreau/go-apihandler/schema"

// ValidationFailure is the wire shape for a failed field validation or an
// unparseable JSON body.
//
//	{"type": "query", "status": "validation_error", "message": "...", "path": ["id"]}
type ValidationFailure struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

const (
	statusError           = "error"
	statusValidationError = "validation_error"

	invalidJSONBodyMessage  = "Invalid JSON body provided"
	preHandlerFailedMessage = "Pre-handler failed."
)

// invalidBodyFailure is the fixed response for a body that does not parse as
// JSON.
func invalidBodyFailure() ValidationFailure {
	return ValidationFailure{
		Type:    string(FieldBody),
		Status:  statusError,
		Message: invalidJSONBodyMessage,
		Path:    []any{},
	}
}

// fieldFailure builds the response for the first issue of a failed field.
func fieldFailure(field Field, issues []schema.Issue) ValidationFailure {
	failure := ValidationFailure{
		Type:   string(field),
		Status: statusValidationError,
		Path:   []any{},
	}
	if len(issues) > 0 {
		failure.Message = issues[0].Message
		if issues[0].Path != nil {
			failure.Path = issues[0].Path
		}
	}
	return failure
}

// PreHandlerFailure is the wire shape for an unexpected pre-handler error.
//
//	{"status": "error", "statusCode": 400, "message": "Pre-handler failed."}
type PreHandlerFailure struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
