package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/campus-registry/internal/qb"
)

// ExecResult carries the driver's post-execution metadata for DML
// statements.
type ExecResult struct {
	RowsAffected int64
	LastInsertID int64
}

// Query runs a built statement that returns rows and materializes the
// whole result set as column-name-to-value maps, in result order. The
// slice is empty, never nil, when nothing matches.
func (db *Database) Query(ctx context.Context, stmt qb.Statement) ([]map[string]any, error) {
	start := time.Now()
	rows, err := db.DB.QueryContext(ctx, stmt.Query, stmt.Args...)
	db.logStatement(stmt, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	results := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			// Text and blob columns scan as []byte; convert them so
			// they serialize as strings rather than base64.
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Exec runs a built statement that modifies rows and reports the
// affected-row count and the last insert id from the driver.
func (db *Database) Exec(ctx context.Context, stmt qb.Statement) (ExecResult, error) {
	start := time.Now()
	res, err := db.DB.ExecContext(ctx, stmt.Query, stmt.Args...)
	db.logStatement(stmt, time.Since(start), err)
	if err != nil {
		return ExecResult{}, fmt.Errorf("executing statement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return ExecResult{}, fmt.Errorf("reading affected rows: %w", err)
	}

	lastID, err := res.LastInsertId()
	if err != nil {
		return ExecResult{}, fmt.Errorf("reading last insert id: %w", err)
	}

	return ExecResult{RowsAffected: affected, LastInsertID: lastID}, nil
}

// logStatement emits per-statement debug entries in local environments
// and flags statements that cross the slow query threshold everywhere.
// Argument values stay out of the logs; only their count is recorded.
func (db *Database) logStatement(stmt qb.Statement, elapsed time.Duration, err error) {
	if db.slowQueryThreshold > 0 && elapsed >= db.slowQueryThreshold {
		db.log.Warn().
			Str("query", stmt.Query).
			Dur("latency", elapsed).
			Msg("slow statement")
		return
	}

	if db.logStatements && err == nil {
		db.log.Debug().
			Str("query", stmt.Query).
			Int("args", len(stmt.Args)).
			Dur("latency", elapsed).
			Msg("statement")
	}
}
