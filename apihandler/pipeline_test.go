package apihandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoreau/go-apihandler/schema"
)

// stubSchema is a controllable Schema for pipeline tests.
type stubSchema struct {
	result schema.Result
	calls  *int
	seen   *any
}

func (s stubSchema) Validate(v any) schema.Result {
	if s.calls != nil {
		*s.calls++
	}
	if s.seen != nil {
		*s.seen = v
	}
	return s.result
}

func passing(data any) stubSchema {
	return stubSchema{result: schema.Result{OK: true, Data: data}}
}

func failing(issues ...schema.Issue) stubSchema {
	return stubSchema{result: schema.Result{OK: false, Issues: issues}}
}

func newTestContext(method, target, body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAdaptStoresValidatedOutputNotRawInput(t *testing.T) {
	type query struct {
		ID int `json:"id" validate:"required"`
	}

	var got *Context
	setup := Setup{
		Schema: NewFields().Query(schema.Struct[query]()),
	}

	c, rec := newTestContext(http.MethodGet, "/x?id=42", "", nil)
	err := Adapt(setup, func(c echo.Context, hc *Context) error {
		got = hc
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)

	// The context holds the coerced struct, not the raw string map.
	assert.Equal(t, query{ID: 42}, got.Query)
	assert.Empty(t, got.Issues)
}

func TestAdaptUnconfiguredFieldsStayEmptyObjects(t *testing.T) {
	var got *Context

	c, _ := newTestContext(http.MethodGet, "/x", "", nil)
	err := Adapt(Setup{}, func(c echo.Context, hc *Context) error {
		got = hc
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{}, got.Body)
	assert.Equal(t, map[string]any{}, got.Segment)
	assert.Equal(t, map[string]any{}, got.Query)
	assert.Equal(t, map[string]any{}, got.Headers)
	assert.NotNil(t, got.Request)
	assert.NotNil(t, got.Echo)
}

func TestAdaptShortCircuitsOnFirstFailure(t *testing.T) {
	var headerCalls int
	handlerRan := false

	setup := Setup{
		Schema: NewFields().
			Query(failing(schema.Issue{Message: "is required", Path: []any{"id"}})).
			Headers(stubSchema{result: schema.Result{OK: true}, calls: &headerCalls}),
	}

	c, rec := newTestContext(http.MethodGet, "/x", "", nil)
	err := Adapt(setup, func(c echo.Context, hc *Context) error {
		handlerRan = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, handlerRan)
	assert.Zero(t, headerCalls, "fields after the first failure must not be processed")

	body := decodeBody(t, rec)
	assert.Equal(t, "query", body["type"])
	assert.Equal(t, "validation_error", body["status"])
	assert.Equal(t, "is required", body["message"])
	assert.Equal(t, []any{"id"}, body["path"])
}

func TestAdaptShortCircuitWithNoIssueDetails(t *testing.T) {
	setup := Setup{
		Schema: NewFields().Query(failing()),
	}

	c, rec := newTestContext(http.MethodGet, "/x", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "", body["message"])
	assert.Equal(t, []any{}, body["path"])
}

func TestAdaptPassThroughProcessesEveryField(t *testing.T) {
	var got *Context

	setup := Setup{
		Schema: NewFields().
			Query(failing(schema.Issue{Message: "bad query", Path: []any{"q"}})).
			Headers(failing(schema.Issue{Message: "bad header", Path: []any{"h"}})),
		Config: Config{Return400ValidationError: Bool(false)},
	}

	c, rec := newTestContext(http.MethodGet, "/x?q=1", "", nil)
	err := Adapt(setup, func(c echo.Context, hc *Context) error {
		got = hc
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)

	require.Len(t, got.Issues, 2)
	assert.Equal(t, "bad query", got.Issues[0].Message)
	assert.Equal(t, "bad header", got.Issues[1].Message)

	// Failing fields keep their default empty objects, not partial data.
	assert.Equal(t, map[string]any{}, got.Query)
	assert.Equal(t, map[string]any{}, got.Headers)
}

func TestAdaptInvalidJSONBody(t *testing.T) {
	setup := Setup{
		Schema: NewFields().Body(passing(nil)),
	}

	c, rec := newTestContext(http.MethodPost, "/x", "not-json", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "body", body["type"])
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Invalid JSON body provided", body["message"])
	assert.Equal(t, []any{}, body["path"])
}

func TestAdaptInvalidJSONBodyPassThrough(t *testing.T) {
	var seen any
	var got *Context

	setup := Setup{
		Schema: NewFields().Body(stubSchema{
			result: schema.Result{OK: false, Issues: []schema.Issue{{Message: "empty", Path: []any{}}}},
			seen:   &seen,
		}),
		Config: Config{Return400ValidationError: Bool(false)},
	}

	c, rec := newTestContext(http.MethodPost, "/x", "not-json", nil)
	err := Adapt(setup, func(c echo.Context, hc *Context) error {
		got = hc
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The schema validated the substituted empty object.
	assert.Equal(t, map[string]any{}, seen)
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{}, got.Body)
	assert.Len(t, got.Issues, 1)
}

func TestAdaptEmptyBodyIsInvalidJSON(t *testing.T) {
	setup := Setup{
		Schema: NewFields().Body(passing(nil)),
	}

	c, rec := newTestContext(http.MethodPost, "/x", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])
}

func TestAdaptOversizeBodyFailsAsInvalidJSON(t *testing.T) {
	setup := Setup{
		Schema: NewFields().Body(passing(nil)),
	}

	// A JSON string larger than the buffering cap loses its closing quote
	// to truncation, so it fails like any malformed payload.
	oversize := `"` + strings.Repeat("a", maxBodyBytes) + `"`

	c, rec := newTestContext(http.MethodPost, "/x", oversize, nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body provided", decodeBody(t, rec)["message"])
}

func TestAdaptBodyStreamRestoredForHandler(t *testing.T) {
	const payload = `{"title":"hello"}`

	setup := Setup{
		Schema: NewFields().Body(passing(map[string]any{"title": "hello"})),
	}

	c, rec := newTestContext(http.MethodPost, "/x", payload, nil)
	err := Adapt(setup, func(c echo.Context, hc *Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		assert.Equal(t, payload, string(raw))
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdaptPreHandlerStructuredError(t *testing.T) {
	setup := Setup{
		PreHandler: func(hc *Context) error {
			return NewErrorPayload(map[string]any{"reason": "denied"}, http.StatusForbidden)
		},
	}

	c, rec := newTestContext(http.MethodGet, "/x", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, map[string]any{"reason": "denied"}, decodeBody(t, rec))
}

func TestAdaptPreHandlerPlainError(t *testing.T) {
	setup := Setup{
		PreHandler: func(hc *Context) error {
			return NewError("no access", http.StatusUnauthorized)
		},
	}

	c, rec := newTestContext(http.MethodGet, "/x", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no access", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
}

func TestAdaptPreHandlerUnknownError(t *testing.T) {
	setup := Setup{
		PreHandler: func(hc *Context) error {
			return errors.New("boom")
		},
	}

	c, rec := newTestContext(http.MethodGet, "/x", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
	assert.Equal(t, "Pre-handler failed.", body["message"])
}

func TestAdaptPreHandlerSeesValidatedContext(t *testing.T) {
	type query struct {
		ID int `json:"id"`
	}

	var seen any
	setup := Setup{
		Schema: NewFields().Query(schema.Struct[query]()),
		PreHandler: func(hc *Context) error {
			seen = hc.Query
			return nil
		},
	}

	c, _ := newTestContext(http.MethodGet, "/x?id=7", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	assert.Equal(t, query{ID: 7}, seen)
}

func TestAdaptHandlerErrorsPropagate(t *testing.T) {
	wantErr := errors.New("handler exploded")

	c, _ := newTestContext(http.MethodGet, "/x", "", nil)
	err := Adapt(Setup{}, func(c echo.Context, hc *Context) error {
		return wantErr
	})(c)

	assert.ErrorIs(t, err, wantErr)
}

func TestAdaptQueryNumberExample(t *testing.T) {
	setup := Setup{
		Schema: NewFields().Query(schema.MustJSON(`{
			"type": "object",
			"required": ["id"],
			"properties": {"id": {"type": "number"}}
		}`)),
	}

	c, rec := newTestContext(http.MethodGet, "/x?id=abc", "", nil)
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "query", body["type"])
	assert.Equal(t, "validation_error", body["status"])
	assert.NotEmpty(t, body["message"])
	assert.Equal(t, []any{"id"}, body["path"])
}

func TestAdaptSegmentValidation(t *testing.T) {
	type segment struct {
		ID string `json:"id" validate:"required,uuid"`
	}

	setup := Setup{
		Schema: NewFields().Segment(schema.Struct[segment]()),
	}

	c, rec := newTestContext(http.MethodGet, "/notes/xyz", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("xyz")

	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return nil
	})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "segment", body["type"])
	assert.Equal(t, "must be a valid UUID", body["message"])
	assert.Equal(t, []any{"id"}, body["path"])
}

func TestAdaptHeaderNamesAreLowercased(t *testing.T) {
	var seen any
	setup := Setup{
		Schema: NewFields().Headers(stubSchema{result: schema.Result{OK: true}, seen: &seen}),
	}

	c, _ := newTestContext(http.MethodGet, "/x", "", map[string]string{"X-API-Key": "secret"})
	require.NoError(t, Adapt(setup, func(c echo.Context, hc *Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	headers, ok := seen.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "secret", headers["x-api-key"])
}
