package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var captured string
	err := RequestID()(func(c echo.Context) error {
		captured = GetRequestID(c)
		return nil
	})(c)

	require.NoError(t, err)
	require.NotEmpty(t, captured)
	_, parseErr := uuid.Parse(captured)
	assert.NoError(t, parseErr)
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDReusesInbound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "upstream-id", GetRequestID(c))
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "", GetRequestID(c))
}
