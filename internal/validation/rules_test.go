package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/campus-registry/internal/errs"
	"github.com/deppfellow/campus-registry/internal/qb"
	"github.com/deppfellow/campus-registry/internal/resource"
)

func TestCheckRulesStudentCreate(t *testing.T) {
	tests := []struct {
		name   string
		values qb.Pairs
		want   []errs.FieldError
	}{
		{
			name: "valid body",
			values: qb.Pairs{
				{Column: "first_name", Value: "john"},
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: int64(2021)},
			},
			want: nil,
		},
		{
			name: "missing email and year",
			values: qb.Pairs{
				{Column: "first_name", Value: "john"},
			},
			want: []errs.FieldError{
				{Field: "email", Error: "is required"},
				{Field: "enrollment_year", Error: "is required"},
			},
		},
		{
			name: "null email counts as empty",
			values: qb.Pairs{
				{Column: "email", Value: nil},
				{Column: "enrollment_year", Value: int64(2020)},
			},
			want: []errs.FieldError{
				{Field: "email", Error: "cannot be empty"},
			},
		},
		{
			name: "empty string email",
			values: qb.Pairs{
				{Column: "email", Value: ""},
				{Column: "enrollment_year", Value: int64(2020)},
			},
			want: []errs.FieldError{
				{Field: "email", Error: "cannot be empty"},
			},
		},
		{
			name: "year below range",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: int64(2015)},
			},
			want: []errs.FieldError{
				{Field: "enrollment_year", Error: "must be at least 2016"},
			},
		},
		{
			name: "year above range",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: int64(2024)},
			},
			want: []errs.FieldError{
				{Field: "enrollment_year", Error: "must not exceed 2023"},
			},
		},
		{
			name: "numeric string year coerces",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: "2020"},
			},
			want: nil,
		},
		{
			name: "fractional year truncates like a cast",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: 2020.5},
			},
			want: nil,
		},
		{
			name: "non numeric year",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: "twenty twenty"},
			},
			want: []errs.FieldError{
				{Field: "enrollment_year", Error: "must be an integer"},
			},
		},
		{
			name: "unknown columns pass through untouched",
			values: qb.Pairs{
				{Column: "email", Value: "john@example.edu"},
				{Column: "enrollment_year", Value: int64(2019)},
				{Column: "nickname", Value: "jd"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRules(resource.Student.Rules, tt.values, ModeCreate)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckRulesStudentUpdate(t *testing.T) {
	tests := []struct {
		name   string
		values qb.Pairs
		want   []errs.FieldError
	}{
		{
			name: "email may be omitted on update",
			values: qb.Pairs{
				{Column: "enrollment_year", Value: int64(2022)},
			},
			want: nil,
		},
		{
			name: "email cannot be blanked on update",
			values: qb.Pairs{
				{Column: "email", Value: ""},
				{Column: "enrollment_year", Value: int64(2022)},
			},
			want: []errs.FieldError{
				{Field: "email", Error: "cannot be empty"},
			},
		},
		{
			name: "year stays required on update",
			values: qb.Pairs{
				{Column: "first_name", Value: "john"},
			},
			want: []errs.FieldError{
				{Field: "enrollment_year", Error: "is required"},
			},
		},
		{
			name: "out of range year on update",
			values: qb.Pairs{
				{Column: "enrollment_year", Value: int64(2030)},
			},
			want: []errs.FieldError{
				{Field: "enrollment_year", Error: "must not exceed 2023"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRules(resource.Student.Rules, tt.values, ModeUpdate)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckRulesEmployeeType(t *testing.T) {
	valid := []string{"Professor", "Lecturer", "Staff"}
	for _, employeeType := range valid {
		values := qb.Pairs{
			{Column: "email", Value: "emp@example.edu"},
			{Column: "employee_type", Value: employeeType},
		}

		assert.Empty(t, CheckRules(resource.Employee.Rules, values, ModeCreate), employeeType)
	}

	values := qb.Pairs{
		{Column: "email", Value: "emp@example.edu"},
		{Column: "employee_type", Value: "Janitor"},
	}
	got := CheckRules(resource.Employee.Rules, values, ModeCreate)

	require.Len(t, got, 1)
	assert.Equal(t, "employee_type", got[0].Field)
	assert.Equal(t, "must be one of: Professor Lecturer Staff", got[0].Error)
}

func TestCheckRulesBooleanCoercion(t *testing.T) {
	// A boolean coerces the way a cast would: true becomes 1, which
	// then fails the range check rather than the type check.
	values := qb.Pairs{
		{Column: "email", Value: "john@example.edu"},
		{Column: "enrollment_year", Value: true},
	}
	got := CheckRules(resource.Student.Rules, values, ModeCreate)

	require.Len(t, got, 1)
	assert.Equal(t, "enrollment_year", got[0].Field)
	assert.Equal(t, "must be at least 2016", got[0].Error)
}
