package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nmoreau/go-apihandler/internal/handler"
)

// registerNoteRoutes registers the demo notes resource under /api.
func registerNoteRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.POST("/notes", h.Notes.Create())
	api.GET("/notes", h.Notes.List())
	api.GET("/notes/:id", h.Notes.GetByID())
	api.POST("/notes/preview", h.Notes.Preview())
}
