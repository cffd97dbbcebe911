// Package router builds the Echo instance: global middleware installation
// and route registration.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nmoreau/go-apihandler/internal/handler"
	"github.com/nmoreau/go-apihandler/internal/middleware"
)

// New constructs the router with the full middleware chain and all routes
// registered. The returned Echo instance serves as the http.Handler passed
// to the server.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context enhancer
	// builds the request-scoped logger, and both must run before the
	// request logger reads them.
	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerNoteRoutes(r, h)

	return r
}
