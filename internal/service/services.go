package service

import (
	"github.com/deppfellow/campus-registry/internal/repository"
	"github.com/deppfellow/campus-registry/internal/resource"
	"github.com/deppfellow/campus-registry/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Students  *ResourceService
	Employees *ResourceService
}

// NewService constructs the service container, one ResourceService per
// registered resource.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Students:  NewResourceService(resource.Student, repos.Students),
		Employees: NewResourceService(resource.Employee, repos.Employees),
	}, nil
}
