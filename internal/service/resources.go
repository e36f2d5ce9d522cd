package service

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/campus-registry/internal/errs"
	"github.com/deppfellow/campus-registry/internal/qb"
	"github.com/deppfellow/campus-registry/internal/repository"
	"github.com/deppfellow/campus-registry/internal/resource"
	"github.com/deppfellow/campus-registry/internal/validation"
)

// ResourceService implements the CRUD business logic for one resource.
// All per-resource behavior comes from the descriptor; the same code
// serves students and employees.
type ResourceService struct {
	res  resource.Resource
	repo *repository.Table
}

// NewResourceService wires a descriptor to its table gateway.
func NewResourceService(res resource.Resource, repo *repository.Table) *ResourceService {
	return &ResourceService{
		res:  res,
		repo: repo,
	}
}

// List returns the rows matching the equality filters, projected to
// columns when any are given. No filters means every row.
func (s *ResourceService) List(ctx context.Context, columns []string, filters qb.Pairs) ([]map[string]any, error) {
	return s.repo.Select(ctx, columns, filters)
}

// Get returns the row with the given id, or a 404 when it is absent.
func (s *ResourceService) Get(ctx context.Context, id int64) (map[string]any, error) {
	rows, err := s.repo.Select(ctx, nil, s.idFilter(id))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, s.notFoundError()
	}

	return rows[0], nil
}

// Create validates values against the resource's rules, pre-checks
// unique columns, and inserts the row. It returns the id the database
// assigned.
func (s *ResourceService) Create(ctx context.Context, values qb.Pairs) (int64, error) {
	if err := s.checkRules(ctx, values, validation.ModeCreate); err != nil {
		return 0, err
	}

	result, err := s.repo.Insert(ctx, values)
	if err != nil {
		return 0, err
	}

	return result.LastInsertID, nil
}

// Update validates and applies values to the row with the given id.
// Existence is checked first, so an unknown id reports 404 even when
// the body is also invalid.
func (s *ResourceService) Update(ctx context.Context, id int64, values qb.Pairs) error {
	exists, err := s.repo.Exists(ctx, s.res.IDColumn, id)
	if err != nil {
		return err
	}
	if !exists {
		return s.notFoundError()
	}

	if err := s.checkRules(ctx, values, validation.ModeUpdate); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, values, s.idFilter(id))
	return err
}

// Delete removes the row with the given id, or reports 404 when it is
// absent.
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, s.res.IDColumn, id)
	if err != nil {
		return err
	}
	if !exists {
		return s.notFoundError()
	}

	_, err = s.repo.Delete(ctx, s.idFilter(id))
	return err
}

// checkRules runs the declarative rules plus the database-backed
// uniqueness pre-checks and combines every failure into one 400.
//
// The uniqueness pre-check does not exclude the row being updated, so
// writing a record's current email back to it still reports a
// conflict. It also races concurrent writers; the unique index is the
// final arbiter, and sqlerr maps that violation to the same 400.
func (s *ResourceService) checkRules(ctx context.Context, values qb.Pairs, mode validation.Mode) error {
	fieldErrors := validation.CheckRules(s.res.Rules, values, mode)

	for _, rule := range s.res.Rules {
		if !rule.Unique {
			continue
		}

		value, present := values.Get(rule.Column)
		if !present || value == nil || value == "" {
			continue
		}

		taken, err := s.repo.Exists(ctx, rule.Column, value)
		if err != nil {
			return err
		}
		if taken {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: rule.Column, Error: "already exists"})
		}
	}

	if len(fieldErrors) > 0 {
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors)
	}

	return nil
}

func (s *ResourceService) idFilter(id int64) qb.Pairs {
	return qb.Pairs{{Column: s.res.IDColumn, Value: id}}
}

// notFoundError builds the resource-specific 404, e.g. code
// STUDENT_NOT_FOUND with message "Student record not found".
func (s *ResourceService) notFoundError() *errs.HTTPError {
	code := errs.MakeUpperCaseWithUnderscores(s.res.Name) + "_NOT_FOUND"
	message := fmt.Sprintf("%s record not found", cases.Title(language.English).String(s.res.Name))

	return errs.NewNotFoundError(message, true, &code)
}
