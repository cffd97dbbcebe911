package handler

import (
	"github.com/nmoreau/go-apihandler/internal/server"
)

// Handler is the base handler type holding shared application dependencies.
// Concrete handlers embed it to reach config and logger via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
