package apihandler

// Config tunes how the pipeline reacts to validation failures.
type Config struct {
	// Return400ValidationError controls whether a failed validation
	// immediately produces a 400 response (the default) or is instead
	// recorded on the context and passed through to the pre-handler and
	// final handler. nil means true.
	Return400ValidationError *bool
}

// shortCircuit reports whether validation failures should respond
// immediately.
func (c Config) shortCircuit() bool {
	return c.Return400ValidationError == nil || *c.Return400ValidationError
}

// Bool is a convenience for building Config literals.
func Bool(v bool) *bool {
	return &v
}

// PreHandler runs after validation and before the final handler. Returning a
// *Error aborts the request with that error's payload and status; returning
// any other non-nil error aborts with a generic 400.
type PreHandler func(hc *Context) error

// Setup is the declarative description of one adapted route: which fields to
// validate, an optional pre-handler, and failure-handling configuration.
// The zero value adapts a handler with no validation at all.
type Setup struct {
	Schema     *Fields
	PreHandler PreHandler
	Config     Config
}
