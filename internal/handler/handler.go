// Package handler is the HTTP layer of the example service.
//
// Routes are wrapped with the apihandler adapter, which performs declarative
// request validation and runs pre-handler checks before the handlers here
// execute. Handlers receive already-validated values through the adapter
// context and never re-parse the request themselves.
package handler
