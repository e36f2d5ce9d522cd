package handler

import (
	"github.com/deppfellow/campus-registry/internal/server"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (ResourceHandler, HealthHandler) so they
// can access shared resources via *server.Server (config, logger, database).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; the only field is a pointer, so copies are
// cheap and still point to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
