package contactform

import (
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Field names, matching the name attributes of the form's inputs.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

// SuccessMessage is the acknowledgment shown after a valid submission.
const SuccessMessage = "Thank you! Your message has been sent successfully."

var (
	// Letters, spaces, hyphens, apostrophes, and periods.
	namePattern = regexp.MustCompile(`^[A-Za-z\s'.\-]+$`)

	// Deliberately loose address shape: one @, no whitespace, and a dotted
	// domain. Full RFC 5322 enforcement rejects too many real addresses.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits plus the punctuation people type in phone numbers. Length
	// bounds are enforced separately on the digit count.
	phonePattern = regexp.MustCompile(`^[0-9\s().+\-]+$`)
)

// formRules is the frozen rule table for the contact form. It is built once
// here and never mutated; Rules exposes it read-only.
var formRules = rules.MustNewSet(
	rules.Field{Name: FieldName, Type: rules.FieldTypeText, Rules: rules.RuleSet{
		Required:  true,
		Pattern:   namePattern,
		MinLength: 2,
		MaxLength: 100,
		Messages: map[rules.Violation]string{
			rules.ViolationRequired:  "Name is required",
			rules.ViolationPattern:   "Name can only contain letters, spaces, hyphens, apostrophes, and periods",
			rules.ViolationMinLength: "Name must be at least 2 characters long",
			rules.ViolationMaxLength: "Name must not exceed 100 characters",
		},
	}},
	rules.Field{Name: FieldEmail, Type: rules.FieldTypeEmail, Rules: rules.RuleSet{
		Required:  true,
		Pattern:   emailPattern,
		MaxLength: 254,
		Messages: map[rules.Violation]string{
			rules.ViolationRequired:  "Email is required",
			rules.ViolationPattern:   "Please enter a valid email address",
			rules.ViolationMaxLength: "Email must not exceed 254 characters",
		},
	}},
	rules.Field{Name: FieldPhone, Type: rules.FieldTypeTel, Rules: rules.RuleSet{
		Required:  true,
		Pattern:   phonePattern,
		MinLength: 10,
		MaxLength: 20,
		Messages: map[rules.Violation]string{
			rules.ViolationRequired:  "Phone number is required",
			rules.ViolationPattern:   "Please enter a valid phone number",
			rules.ViolationMinLength: "Phone number must be at least 10 digits",
			rules.ViolationMaxLength: "Phone number must not exceed 20 digits",
		},
	}},
	rules.Field{Name: FieldService, Type: rules.FieldTypeSelect, Rules: rules.RuleSet{
		Required: true,
		Messages: map[rules.Violation]string{
			rules.ViolationRequired: "Please select a service",
		},
	}},
	rules.Field{Name: FieldMessage, Type: rules.FieldTypeTextarea, Rules: rules.RuleSet{
		Required:  true,
		MinLength: 10,
		MaxLength: 1000,
		Messages: map[rules.Violation]string{
			rules.ViolationRequired:  "Message is required",
			rules.ViolationMinLength: "Message must be at least 10 characters long",
			rules.ViolationMaxLength: "Message must not exceed 1000 characters",
		},
	}},
)

// Rules returns the contact form's rule table. The table is shared and
// immutable.
func Rules() *rules.Set {
	return formRules
}

// ValidateField evaluates a single field value against the table. Unknown
// field names are always valid.
func ValidateField(name, value string) rules.Result {
	return formRules.EvaluateField(name, value)
}
