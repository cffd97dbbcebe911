package handler

import (
	"github.com/nmoreau/go-apihandler/internal/server"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health *HealthHandler // liveness endpoint
	Notes  *NotesHandler  // demo resource exercising the validation adapter
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Notes:  NewNotesHandler(s),
	}
}
