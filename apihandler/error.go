package apihandler

import (
	"encoding/json"
	"net/http"
)

// Error is the deliberate, user-triggered failure a pre-handler returns to
// abort a request.
//
// The message is either a plain string or a structured payload serialized to
// JSON; the pipeline parses it back when building the response, so payload
// errors produce JSON bodies and plain-string errors produce text bodies.
type Error struct {
	message string
	status  int
}

// NewError builds an Error from a plain message. A non-positive status
// defaults to 400.
func NewError(message string, status int) *Error {
	if status <= 0 {
		status = http.StatusBadRequest
	}
	return &Error{message: message, status: status}
}

// NewErrorPayload builds an Error whose message is the JSON serialization of
// payload. A payload that cannot be serialized falls back to a plain
// formatted message.
func NewErrorPayload(payload any, status int) *Error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return NewError("unserializable error payload", status)
	}
	return NewError(string(raw), status)
}

func (e *Error) Error() string {
	return e.message
}

// Message returns the raw message string.
func (e *Error) Message() string {
	return e.message
}

// Status returns the HTTP status the response should carry.
func (e *Error) Status() int {
	return e.status
}
