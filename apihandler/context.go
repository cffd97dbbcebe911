package apihandler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nmoreau/go-apihandler/schema"
)

// Context is the working record handed to the pre-handler and final handler.
//
// Each per-field value starts as an empty object and is replaced with the
// schema's validated/coerced output when that field's validation passes. The
// values are never nil, whether or not a schema was configured for the field
// and whether or not validation short-circuits.
type Context struct {
	// Request is the original request handle. Its body remains readable:
	// the pipeline buffers and restores the stream before parsing it.
	Request *http.Request

	// Echo is the per-invocation framework context the route was invoked
	// with.
	Echo echo.Context

	Body    any
	Segment any
	Query   any
	Headers any

	// Issues collects every validation failure seen so far, in field
	// processing order. It grows even when short-circuiting is disabled.
	Issues []schema.Issue
}

func newContext(c echo.Context) *Context {
	return &Context{
		Request: c.Request(),
		Echo:    c,
		Body:    map[string]any{},
		Segment: map[string]any{},
		Query:   map[string]any{},
		Headers: map[string]any{},
	}
}

func (hc *Context) set(field Field, value any) {
	switch field {
	case FieldBody:
		hc.Body = value
	case FieldSegment:
		hc.Segment = value
	case FieldQuery:
		hc.Query = value
	case FieldHeaders:
		hc.Headers = value
	}
}
