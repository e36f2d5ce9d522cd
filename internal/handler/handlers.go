package handler

import (
	"github.com/deppfellow/campus-registry/internal/resource"
	"github.com/deppfellow/campus-registry/internal/server"
	"github.com/deppfellow/campus-registry/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Students  *ResourceHandler
	Employees *ResourceHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Students:  NewResourceHandler(s, resource.Student, services.Students),
		Employees: NewResourceHandler(s, resource.Employee, services.Employees),
	}
}
