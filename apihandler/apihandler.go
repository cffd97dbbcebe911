// Package apihandler wraps a route handler with declarative request
// validation, an optional pre-handler hook, and a uniform error-response
// shape.
//
// A Setup names the schemas to run against the request body, path segments,
// query parameters, and headers. Adapt turns the setup plus a final handler
// into an echo.HandlerFunc whose pipeline is:
//
//	EXTRACT -> VALIDATE (per configured field) -> PRE-HANDLER -> HANDLER
//
// Every failure path short-circuits into an HTTP response; errors returned by
// the final handler itself are deliberately left for the host framework's
// error handling.
package apihandler
