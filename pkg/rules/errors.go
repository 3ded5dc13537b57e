package rules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingMessage is returned by NewSet when a rule set declares a
	// constraint without a message for the matching violation.
	ErrMissingMessage = errors.New("rule set constraint has no message")

	// ErrDuplicateField is returned by NewSet when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrEmptyFieldName is returned by NewSet for a field without a name.
	ErrEmptyFieldName = errors.New("field name is required")

	// ErrInvalidLengthBounds is returned by NewSet when MinLength exceeds
	// MaxLength or either bound is negative.
	ErrInvalidLengthBounds = errors.New("invalid length bounds")
)

// ValidationError describes a single field-level violation.
type ValidationError struct {
	Field     string
	Violation Violation
	Message   string
}

// ValidationErrors aggregates the violations of a whole-form evaluation,
// one entry per failing field.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the message recorded for field, or "" if the field passed.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields lists the failing field names in evaluation order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
