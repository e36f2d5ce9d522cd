package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/deppfellow/campus-registry/internal/errs"
	"github.com/deppfellow/campus-registry/internal/qb"
	"github.com/deppfellow/campus-registry/internal/resource"
)

// Mode selects which required flags apply when rules run.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// validate is the shared validator instance. Var calls are safe for
// concurrent use.
var validate = validator.New()

// CheckRules evaluates a resource's declarative rules against a parsed
// body and returns the field errors, empty when the body passes.
// Uniqueness rules need the database and stay with the caller.
//
// Semantics per rule:
//   - Absent, null, and empty-string values all count as missing.
//   - Missing required fields fail with "is required".
//   - A field required only on create may be omitted on update, but
//     when the key is present it still must carry a non-empty value.
//   - Present values are coerced to the rule's kind, then run through
//     its checks expression.
func CheckRules(rules []resource.Rule, values qb.Pairs, mode Mode) []errs.FieldError {
	var fieldErrors []errs.FieldError

	for _, rule := range rules {
		value, present := values.Get(rule.Column)

		if !present || isEmpty(value) {
			requiredNow := rule.RequiredOnCreate
			if mode == ModeUpdate {
				requiredNow = rule.RequiredOnUpdate
			}

			switch {
			case present && (rule.RequiredOnCreate || rule.RequiredOnUpdate):
				fieldErrors = append(fieldErrors, errs.FieldError{Field: rule.Column, Error: "cannot be empty"})
			case requiredNow:
				fieldErrors = append(fieldErrors, errs.FieldError{Field: rule.Column, Error: "is required"})
			}
			continue
		}

		coerced, coerceErr := coerce(value, rule.Kind)
		if coerceErr != "" {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: rule.Column, Error: coerceErr})
			continue
		}

		if rule.Checks == "" {
			continue
		}

		if err := validate.Var(coerced, rule.Checks); err != nil {
			fieldErrors = append(fieldErrors, extractRuleErrors(rule.Column, err)...)
		}
	}

	return fieldErrors
}

// isEmpty reports whether a present value still counts as missing:
// JSON null and the empty string do.
func isEmpty(value any) bool {
	return value == nil || value == ""
}

// coerce converts value to the rule's scalar kind. The second return
// is the client-facing message when conversion fails.
func coerce(value any, kind resource.Kind) (any, string) {
	switch kind {
	case resource.KindInt:
		n, err := cast.ToInt64E(value)
		if err != nil {
			return nil, "must be an integer"
		}
		return n, ""
	default:
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, "must be a string"
		}
		return s, ""
	}
}

// extractRuleErrors converts validator failures into user-friendly
// field errors. Var validation does not know field names, so the
// rule's column is attached here.
func extractRuleErrors(column string, err error) []errs.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errs.FieldError{{Field: column, Error: "is invalid"}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, verr := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: column,
			Error: checkMessage(verr),
		})
	}

	return fieldErrors
}

// checkMessage maps a failed validator tag onto a human-readable
// message.
func checkMessage(verr validator.FieldError) string {
	switch verr.Tag() {
	case "required":
		return "is required"

	case "min":
		// min is a length for strings and a bound for numbers.
		if verr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", verr.Param())
		}
		return fmt.Sprintf("must be at least %s", verr.Param())

	case "max":
		if verr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", verr.Param())
		}
		return fmt.Sprintf("must not exceed %s", verr.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", verr.Param())

	case "email":
		return "must be a valid email address"

	default:
		if verr.Param() != "" {
			return fmt.Sprintf("%s:%s", verr.Tag(), verr.Param())
		}
		return verr.Tag()
	}
}
