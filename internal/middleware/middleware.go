// Package middleware contains the HTTP middleware for the example service:
// request ID correlation, request-scoped logging, and the global middlewares
// (CORS, request logger, recovery, secure headers) plus the global error
// handler that funnels every failure into the uniform errs.HTTPError shape.
package middleware
