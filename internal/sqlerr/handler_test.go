package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/campus-registry/internal/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMySQLError(t *testing.T) {
	tests := []struct {
		name           string
		src            *mysql.MySQLError
		wantCode       Code
		wantTable      string
		wantColumn     string
		wantConstraint string
	}{
		{
			name: "duplicate entry with qualified key",
			src: &mysql.MySQLError{
				Number:  1062,
				Message: "Duplicate entry 'john@example.edu' for key 'student.email'",
			},
			wantCode:       UniqueViolation,
			wantTable:      "student",
			wantColumn:     "email",
			wantConstraint: "email",
		},
		{
			name: "duplicate entry with workbench style key",
			src: &mysql.MySQLError{
				Number:  1062,
				Message: "Duplicate entry 'jane@example.edu' for key 'employee.email_UNIQUE'",
			},
			wantCode:       UniqueViolation,
			wantTable:      "employee",
			wantColumn:     "email",
			wantConstraint: "email_UNIQUE",
		},
		{
			name: "null column",
			src: &mysql.MySQLError{
				Number:  1048,
				Message: "Column 'email' cannot be null",
			},
			wantCode:   NotNullViolation,
			wantColumn: "email",
		},
		{
			name: "missing field without default",
			src: &mysql.MySQLError{
				Number:  1364,
				Message: "Field 'email' doesn't have a default value",
			},
			wantCode:   NotNullViolation,
			wantColumn: "email",
		},
		{
			name: "foreign key failure",
			src: &mysql.MySQLError{
				Number:  1452,
				Message: "Cannot add or update a child row: a foreign key constraint fails (`registry`.`enrollment`, CONSTRAINT `fk_enrollment_student` FOREIGN KEY (`student_id`) REFERENCES `student` (`student_id`))",
			},
			wantCode:       ForeignKeyViolation,
			wantTable:      "enrollment",
			wantColumn:     "student_id",
			wantConstraint: "fk_enrollment_student",
		},
		{
			name: "check constraint",
			src: &mysql.MySQLError{
				Number:  3819,
				Message: "Check constraint 'student_chk_1' is violated.",
			},
			wantCode:       CheckViolation,
			wantConstraint: "student_chk_1",
		},
		{
			name: "unknown number stays other",
			src: &mysql.MySQLError{
				Number:  1205,
				Message: "Lock wait timeout exceeded; try restarting transaction",
			},
			wantCode: Other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := ConvertMySQLError(tt.src)

			assert.Equal(t, tt.wantCode, converted.Code)
			assert.Equal(t, tt.src.Number, converted.Number)
			assert.Equal(t, tt.wantTable, converted.TableName)
			assert.Equal(t, tt.wantColumn, converted.ColumnName)
			assert.Equal(t, tt.wantConstraint, converted.ConstraintName)
			assert.ErrorIs(t, converted, tt.src)
		})
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'john@example.edu' for key 'student.email'",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "STUDENT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Student with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&mysql.MySQLError{
		Number:  1048,
		Message: "Column 'email' cannot be null",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECORD_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorUnknownDatabaseError(t *testing.T) {
	err := HandleError(&mysql.MySQLError{
		Number:  1205,
		Message: "Lock wait timeout exceeded; try restarting transaction",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("selecting row: %w", sql.ErrNoRows))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Student record not found", true, nil)

	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorPlainError(t *testing.T) {
	err := HandleError(errors.New("connection refused"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("inserting row: %w", ConvertMySQLError(&mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'x' for key 'student.email'",
	}))

	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("not a database error")))
}
