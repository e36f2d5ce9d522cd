package errs

import "strings"

// FieldError is one field-level validation failure.
type FieldError struct {
	// Field is the column or input key the error relates to.
	Field string `json:"field"`

	// Error is the human-readable message for that field.
	Error string `json:"error"`
}

// HTTPError is the error type every failed request serializes to.
//
// Code is a stable machine-readable identifier, Message the
// human-readable one. Override tells the global error handler whether
// Message is safe to send as-is or should be replaced by the generic
// status text outside local environments.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors carries per-field validation failures, when there are any.
	Errors []FieldError `json:"errors"`
}

// Error satisfies the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any other *HTTPError regardless of code or status, so
// errors.Is(err, &HTTPError{}) answers "is this one of ours".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy with Message replaced, leaving the
// receiver untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns text like "Bad Request" into a
// stable code like "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
