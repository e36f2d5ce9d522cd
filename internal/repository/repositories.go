package repository

import (
	"github.com/deppfellow/campus-registry/internal/resource"
	"github.com/deppfellow/campus-registry/internal/server"
)

// Repositories is a container for all repository instances, one table
// gateway per registered resource.
type Repositories struct {
	Students  *Table
	Employees *Table
}

// NewRepositories constructs the repository container on top of the
// application's shared database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Students:  NewTable(s.DB, resource.Student.Table),
		Employees: NewTable(s.DB, resource.Employee.Table),
	}
}
