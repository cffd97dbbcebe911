// Package errs defines the uniform error shapes the example service returns
// to clients.
//
// Every failure that reaches the global error handler is translated into an
// HTTPError, so API clients always receive the same JSON structure,
// including field-level validation errors where they exist.
package errs
