package apihandler

// Request is the extraction capability the pipeline needs from a host HTTP
// stack. Each method returns the raw, unvalidated value for one field.
type Request interface {
	// ReadJSONBody parses the request payload as JSON. The underlying
	// stream must stay readable for downstream consumers.
	ReadJSONBody() (any, error)

	// PathParams returns the router-provided path parameters.
	PathParams() map[string]string

	// QueryParams returns the URL query parameters flattened to a plain
	// key/value mapping.
	QueryParams() map[string]string

	// Headers returns the request headers flattened to a plain key/value
	// mapping.
	Headers() map[string]string
}

// Responder is the response-construction capability the pipeline uses for
// its own short-circuit responses.
type Responder interface {
	JSON(status int, body any) error
	Text(status int, body string) error
}
