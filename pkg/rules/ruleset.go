package rules

import (
	"fmt"
	"regexp"
)

// Violation identifies which check of a rule set failed.
type Violation string

const (
	ViolationRequired  Violation = "required"
	ViolationPattern   Violation = "pattern"
	ViolationMinLength Violation = "minLength"
	ViolationMaxLength Violation = "maxLength"
)

// FieldType selects the effective-length measure for a field. Only
// FieldTypeTel changes behavior: its length bounds count digit characters
// instead of runes.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeSelect   FieldType = "select"
	FieldTypeTextarea FieldType = "textarea"
)

// RuleSet is the immutable validation configuration for one named field.
// A zero MinLength or MaxLength means no constraint; a nil Pattern means no
// pattern check. Every declared constraint must have a message registered
// under the matching Violation key.
type RuleSet struct {
	Required  bool
	Pattern   *regexp.Regexp
	MinLength int
	MaxLength int
	Messages  map[Violation]string
}

// validate enforces the constraint/message invariant at table construction.
func (rs RuleSet) validate() error {
	if rs.MinLength < 0 || rs.MaxLength < 0 {
		return fmt.Errorf("%w: negative bound", ErrInvalidLengthBounds)
	}
	if rs.MinLength > 0 && rs.MaxLength > 0 && rs.MinLength > rs.MaxLength {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidLengthBounds, rs.MinLength, rs.MaxLength)
	}

	need := func(v Violation) error {
		if rs.Messages[v] == "" {
			return fmt.Errorf("%w: %s", ErrMissingMessage, v)
		}
		return nil
	}

	if rs.Required {
		if err := need(ViolationRequired); err != nil {
			return err
		}
	}
	if rs.Pattern != nil {
		if err := need(ViolationPattern); err != nil {
			return err
		}
	}
	if rs.MinLength > 0 {
		if err := need(ViolationMinLength); err != nil {
			return err
		}
	}
	if rs.MaxLength > 0 {
		if err := need(ViolationMaxLength); err != nil {
			return err
		}
	}
	return nil
}

// message returns the registered message for a violation, falling back to a
// generic one so a misconfigured table still fails closed instead of
// reporting an empty string.
func (rs RuleSet) message(v Violation) string {
	if msg, ok := rs.Messages[v]; ok && msg != "" {
		return msg
	}
	return "This field is invalid"
}

// Result is the outcome of evaluating one field. It is ephemeral: produced
// per call and never stored by the engine.
type Result struct {
	Valid     bool
	Violation Violation
	Message   string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(rs RuleSet, v Violation) Result {
	return Result{Valid: false, Violation: v, Message: rs.message(v)}
}
