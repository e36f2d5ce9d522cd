package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/campus-registry/internal/errs"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MySQL reports constraint metadata only inside the message text, in
// formats that have been stable across 5.7 and 8.x.
var (
	duplicateEntryPattern  = regexp.MustCompile(`for key '([^']+)'`)
	nullColumnPattern      = regexp.MustCompile(`Column '([^']+)' cannot be null`)
	noDefaultPattern       = regexp.MustCompile(`Field '([^']+)' doesn't have a default value`)
	checkConstraintPattern = regexp.MustCompile(`Check constraint '([^']+)' is violated`)
	foreignKeyPattern      = regexp.MustCompile("foreign key constraint fails \\(`[^`]+`\\.`([^`]+)`, CONSTRAINT `([^`]+)` FOREIGN KEY \\(`([^`]+)`\\)")
)

// ErrCode reports the mapped sqlerr.Code for a given error, walking the
// chain with errors.As. Anything that is not a *sqlerr.Error maps to
// Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertMySQLError converts a raw *mysql.MySQLError into our
// normalized Error, parsing table/column/constraint names out of the
// message where the format allows it.
func ConvertMySQLError(src *mysql.MySQLError) *Error {
	converted := &Error{
		Code:      MapCode(src.Number),
		Number:    src.Number,
		Message:   src.Message,
		driverErr: src,
	}

	switch converted.Code {
	case UniqueViolation:
		if m := duplicateEntryPattern.FindStringSubmatch(src.Message); m != nil {
			// MySQL 8 reports keys as "<table>.<key_name>"; older
			// servers report the bare key name.
			if table, key, ok := strings.Cut(m[1], "."); ok {
				converted.TableName = table
				converted.ConstraintName = key
			} else {
				converted.ConstraintName = m[1]
			}
			converted.ColumnName = extractColumnForUniqueViolation(converted.TableName, converted.ConstraintName)
		}

	case NotNullViolation:
		if m := nullColumnPattern.FindStringSubmatch(src.Message); m != nil {
			converted.ColumnName = m[1]
		} else if m := noDefaultPattern.FindStringSubmatch(src.Message); m != nil {
			converted.ColumnName = m[1]
		}

	case ForeignKeyViolation:
		if m := foreignKeyPattern.FindStringSubmatch(src.Message); m != nil {
			converted.TableName = m[1]
			converted.ConstraintName = m[2]
			converted.ColumnName = m[3]
		}

	case CheckViolation:
		if m := checkConstraintPattern.FindStringSubmatch(src.Message); m != nil {
			converted.ConstraintName = m[1]
		}
	}

	return converted
}

// generateErrorCode creates consistent application error codes from DB
// errors, in the form <DOMAIN>_<ACTION>.
//
// Example: student + UniqueViolation => STUDENT_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization for plural table names.
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for a
// normalized database error. Logs keep the raw driver message; this one
// goes over the wire.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced with the column name later, when the
		// constraint let us infer one.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name for messages.
//
// A column like "student_id" wins over the table name because it names
// the referenced entity on foreign key failures; otherwise the table
// name is used, crudely singularized.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts identifiers like "enrollment_year" into
// "Enrollment Year".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column behind a unique key
// from its name. It understands the common naming conventions: a key
// named after its column, "unique_<table>_<column>", MySQL Workbench's
// "<column>_UNIQUE", and "<table>_<column>_key".
func extractColumnForUniqueViolation(tableName, constraintName string) string {
	if constraintName == "" || constraintName == "PRIMARY" {
		return ""
	}

	column := constraintName
	column = strings.TrimPrefix(column, "unique_")
	for _, suffix := range []string{"_UNIQUE", "_ukey", "_key"} {
		column = strings.TrimSuffix(column, suffix)
	}
	if tableName != "" {
		column = strings.TrimPrefix(column, tableName+"_")
	}

	return column
}

// HandleError converts a low-level database error into an
// application-level one.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If *mysql.MySQLError: mapped to a 400 for constraint violations,
//     500 for everything else
//   - If sql.ErrNoRows: mapped to a 404
//   - Otherwise: a generic 500
//
// The global error handler funnels every unrecognized error through
// here before responding.
func HandleError(err error) error {
	// Already an HTTPError: don't re-wrap, preserve the exact shape.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		sqlErr := ConvertMySQLError(mysqlErr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			if sqlErr.ColumnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(sqlErr.ColumnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
