package apihandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HandlerFunc is the final, caller-supplied handler. Its error is not
// intercepted by the pipeline: Echo's own error handling applies.
type HandlerFunc func(c echo.Context, hc *Context) error

// maxBodyBytes bounds how much of a request body the pipeline will buffer
// for validation.
const maxBodyBytes = 10 << 20

// Adapt wraps a handler with the validation pipeline described by setup and
// returns a route handler that can be registered directly on an Echo router.
//
// Request bodies are buffered up to 10MB for validation; anything past the
// cap is dropped, so an oversize body fails body validation as malformed
// JSON. Put a size-limiting middleware in front when clients must get a 413
// instead.
func Adapt(setup Setup, h HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		hc := newContext(c)

		handled, err := setup.run(
			&echoRequest{c: c},
			&echoResponder{c: c},
			hc,
			zerolog.Ctx(c.Request().Context()),
		)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}

		return h(c, hc)
	}
}

// echoRequest implements the Request capability over an Echo context.
type echoRequest struct {
	c echo.Context
}

// ReadJSONBody buffers up to maxBodyBytes of the body, restores the stream
// so downstream consumers can still read it, and parses the bytes as JSON.
// An empty body is not valid JSON and fails like any other malformed
// payload; so does a body truncated at the cap.
func (r *echoRequest) ReadJSONBody() (any, error) {
	request := r.c.Request()

	var raw []byte
	if request.Body != nil && request.Body != http.NoBody {
		var err error
		raw, err = io.ReadAll(io.LimitReader(request.Body, maxBodyBytes))
		if err != nil {
			return nil, err
		}
		request.Body = io.NopCloser(bytes.NewReader(raw))
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func (r *echoRequest) PathParams() map[string]string {
	names := r.c.ParamNames()
	params := make(map[string]string, len(names))
	for _, name := range names {
		params[name] = r.c.Param(name)
	}
	return params
}

func (r *echoRequest) QueryParams() map[string]string {
	values := r.c.QueryParams()
	params := make(map[string]string, len(values))
	for name := range values {
		params[name] = values.Get(name)
	}
	return params
}

// Headers lowercases header names so schemas address them the way they
// appear on the wire in HTTP/2.
func (r *echoRequest) Headers() map[string]string {
	header := r.c.Request().Header
	params := make(map[string]string, len(header))
	for name := range header {
		params[strings.ToLower(name)] = header.Get(name)
	}
	return params
}

// echoResponder implements the Responder capability over an Echo context.
type echoResponder struct {
	c echo.Context
}

func (r *echoResponder) JSON(status int, body any) error {
	return r.c.JSON(status, body)
}

func (r *echoResponder) Text(status int, body string) error {
	return r.c.String(status, body)
}
