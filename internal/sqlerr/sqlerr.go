// Package sqlerr translates database driver errors.
//
// It normalizes raw MySQL server errors into violation categories and
// converts them into client-facing errors (e.g. a duplicate key on
// insert becomes a 400 with a useful message instead of a leaked
// driver string).
package sqlerr

// Code categorizes the database errors the API reacts to. Everything
// the switch below does not recognize stays Other and surfaces as a
// plain 500.
type Code int

const (
	Other Code = iota
	UniqueViolation
	NotNullViolation
	ForeignKeyViolation
	CheckViolation
)

// Error is the normalized form of a MySQL server error. The metadata
// fields are best effort: MySQL reports them inside the message text,
// so they are parsed out when the message matches the known formats and
// left empty otherwise.
type Error struct {
	Code    Code
	Number  uint16 // MySQL server error number, e.g. 1062
	Message string

	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

// Error satisfies the error interface with the server's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a MySQL server error number onto a violation category.
func MapCode(number uint16) Code {
	switch number {
	case 1062, 1586:
		// ER_DUP_ENTRY, ER_DUP_ENTRY_WITH_KEY_NAME
		return UniqueViolation
	case 1048, 1364:
		// ER_BAD_NULL_ERROR, ER_NO_DEFAULT_FOR_FIELD
		return NotNullViolation
	case 1216, 1217, 1451, 1452:
		// Missing or still-referenced foreign key rows.
		return ForeignKeyViolation
	case 3819:
		// ER_CHECK_CONSTRAINT_VIOLATED
		return CheckViolation
	default:
		return Other
	}
}
