package contactform

import (
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/sanitize"
)

// Submission holds the values of one contact-form submission. Field tags
// follow the form's input names.
type Submission struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Service string `form:"service" json:"service"`
	Message string `form:"message" json:"message"`
}

// Values returns the submission as the field-name map the rule table
// evaluates.
func (s Submission) Values() map[string]string {
	return map[string]string{
		FieldName:    s.Name,
		FieldEmail:   s.Email,
		FieldPhone:   s.Phone,
		FieldService: s.Service,
		FieldMessage: s.Message,
	}
}

var cleanName = sanitize.Compose(
	sanitize.Trim,
	sanitize.CollapseWhitespace,
	sanitize.NormalizeUnicode,
)

var cleanMessage = sanitize.Compose(
	sanitize.StripHTML,
	sanitize.Trim,
	sanitize.NormalizeUnicode,
)

// Sanitized returns a cleaned copy of the submission: whitespace trimmed
// everywhere, name whitespace collapsed, email normalised, and HTML
// stripped from the free-text message. Validation accepts either form; use
// the sanitized copy for anything rendered back into markup.
func (s Submission) Sanitized() Submission {
	return Submission{
		Name:    cleanName(s.Name),
		Email:   sanitize.NormalizeEmail(s.Email),
		Phone:   sanitize.Trim(s.Phone),
		Service: sanitize.Trim(s.Service),
		Message: cleanMessage(s.Message),
	}
}

// Validate runs whole-form validation. Every field with a registered rule
// set is evaluated; the submission is valid iff all of them pass. A non-nil
// return is a rules.ValidationErrors carrying one message per failing field.
func Validate(s Submission) error {
	return formRules.Evaluate(s.Values())
}

// ExtractErrors is a convenience re-export for callers that only import
// this package.
func ExtractErrors(err error) rules.ValidationErrors {
	return rules.ExtractValidationErrors(err)
}
