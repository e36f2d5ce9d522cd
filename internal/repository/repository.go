// Package repository handles all interactions with the database.
//
// It builds statements through the qb package and runs them against an
// injected Executor, abstracting SQL away from the service layer. The
// Executor seam is what lets tests swap the real database for a double.
package repository

import (
	"context"

	"github.com/deppfellow/campus-registry/internal/database"
	"github.com/deppfellow/campus-registry/internal/qb"
)

// Executor runs built statements. *database.Database implements it in
// production; tests provide scripted doubles.
type Executor interface {
	Query(ctx context.Context, stmt qb.Statement) ([]map[string]any, error)
	Exec(ctx context.Context, stmt qb.Statement) (database.ExecResult, error)
}

// Table is a generic gateway to one relational table. Every resource
// repository is a Table; per-resource behavior lives in descriptors
// and services, not in hand-written SQL.
type Table struct {
	exec  Executor
	table string
}

// NewTable builds a gateway for the named table on top of exec.
func NewTable(exec Executor, table string) *Table {
	return &Table{
		exec:  exec,
		table: table,
	}
}

// Select fetches rows matching the equality filters, projected to
// columns when any are given.
func (t *Table) Select(ctx context.Context, columns []string, filters qb.Pairs) ([]map[string]any, error) {
	return t.exec.Query(ctx, qb.BuildSelect(t.table, columns, filters))
}

// Insert writes one row and reports the driver's execution metadata,
// including the assigned auto-increment id.
func (t *Table) Insert(ctx context.Context, values qb.Pairs) (database.ExecResult, error) {
	return t.exec.Exec(ctx, qb.BuildInsert(t.table, values))
}

// Update applies the value assignments to every row matching the
// filters. Empty filters update the whole table.
func (t *Table) Update(ctx context.Context, values qb.Pairs, filters qb.Pairs) (database.ExecResult, error) {
	return t.exec.Exec(ctx, qb.BuildUpdate(t.table, values, filters))
}

// Delete removes every row matching the filters. Empty filters empty
// the whole table.
func (t *Table) Delete(ctx context.Context, filters qb.Pairs) (database.ExecResult, error) {
	return t.exec.Exec(ctx, qb.BuildDelete(t.table, filters))
}

// Exists reports whether any row carries value in column.
func (t *Table) Exists(ctx context.Context, column string, value any) (bool, error) {
	rows, err := t.Select(ctx, nil, qb.Pairs{{Column: column, Value: value}})
	if err != nil {
		return false, err
	}

	return len(rows) > 0, nil
}
