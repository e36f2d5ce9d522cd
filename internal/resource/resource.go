// Package resource declares the registry's resources and the
// validation rules their write operations enforce.
//
// A Resource ties a route group to a table and an id column; its Rules
// describe, declaratively, what a valid body looks like. One generic
// handler/service pair interprets these descriptors, so adding a
// resource means adding a descriptor here and registering its routes,
// not writing another CRUD stack.
package resource

// Kind is the scalar type a rule coerces its value to before running
// checks.
type Kind int

const (
	KindString Kind = iota
	KindInt
)

// Rule is one declarative constraint on a body field.
//
// Required fields must be present and non-empty in the body of the
// marked operation. A field whose rule requires it only on create may
// be omitted on update, but when present it still must be non-empty
// and pass its checks. Unique fields are pre-checked against the table
// before any insert or update.
type Rule struct {
	Column           string
	RequiredOnCreate bool
	RequiredOnUpdate bool
	Unique           bool

	// Kind selects the coercion applied before Checks run. Values that
	// do not coerce fail validation instead of reaching the database.
	Kind Kind

	// Checks is a validator tag expression applied to the coerced
	// value, e.g. "min=2016,max=2023" or "oneof=Professor Lecturer Staff".
	Checks string
}

// Resource describes one CRUD surface: its route group, the table
// behind it, the primary key column, and the body rules.
type Resource struct {
	// Name is the singular entity name used in messages and error
	// codes, e.g. "student".
	Name string

	// Path is the route group the resource is served under.
	Path string

	Table    string
	IDColumn string
	Rules    []Rule
}

// Student is the /students resource backed by the student table.
// Enrollment years are bounded to the range the registry accepts.
var Student = Resource{
	Name:     "student",
	Path:     "/students",
	Table:    "student",
	IDColumn: "student_id",
	Rules: []Rule{
		{Column: "email", RequiredOnCreate: true, Unique: true},
		{Column: "enrollment_year", RequiredOnCreate: true, RequiredOnUpdate: true, Kind: KindInt, Checks: "min=2016,max=2023"},
	},
}

// Employee is the /employees resource backed by the employee table.
var Employee = Resource{
	Name:     "employee",
	Path:     "/employees",
	Table:    "employee",
	IDColumn: "employee_id",
	Rules: []Rule{
		{Column: "email", RequiredOnCreate: true, Unique: true},
		{Column: "employee_type", RequiredOnCreate: true, RequiredOnUpdate: true, Checks: "oneof=Professor Lecturer Staff"},
	},
}

// All lists every registered resource, in registration order.
var All = []Resource{Student, Employee}
