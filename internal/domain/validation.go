package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError is a single declarative rule failure on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rule failure found on an entity. Factories
// and mutating operations run their full rule set and report all failures at
// once, before any state is committed.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// rule checks one field and returns nil when it passes.
type rule func() *FieldError

// validate runs a rule set and folds the failures into a single
// *ValidationError, or returns nil when everything passes.
func validate(rules ...rule) error {
	var fieldErrs []FieldError
	for _, r := range rules {
		if fe := r(); fe != nil {
			fieldErrs = append(fieldErrs, *fe)
		}
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	return &ValidationError{Errors: fieldErrs}
}

func required(field, value string) rule {
	return func() *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Message: "is required"}
		}
		return nil
	}
}

func maxLength(field, value string, max int) rule {
	return func() *FieldError {
		if len(value) > max {
			return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
		}
		return nil
	}
}

func intRange(field string, value, min, max int) rule {
	return func() *FieldError {
		if value < min || value > max {
			return &FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
		}
		return nil
	}
}

func nonNegativeAmount(field string, value decimal.Decimal) rule {
	return func() *FieldError {
		if value.IsNegative() {
			return &FieldError{Field: field, Message: "must not be negative"}
		}
		return nil
	}
}
