// Package markup renders the accessibility markup a validated form
// produces: per-field error nodes announced by screen readers, the
// invalid-state attributes that link a field to its error node, and the
// form-level success acknowledgment. Components are plain templ components
// so they compose with any templ-rendered page.
package markup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorID returns the id of the error node adjacent to a field, which is
// also the value the field's aria-describedby must reference.
func ErrorID(fieldID string) string {
	return fieldID + "-error"
}

// FieldError renders the error node for an invalid field. The node carries
// an alert role with polite live-region semantics so the message is
// announced without interrupting the user.
func FieldError(fieldID, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<span id="%s" class="form-error" role="alert" aria-live="polite">%s</span>`,
			templ.EscapeString(ErrorID(fieldID)),
			templ.EscapeString(message),
		)
		return err
	})
}

// InvalidAttrs returns the attributes an input element must carry while its
// value is invalid. With invalid=false it returns the attributes that
// reverse the error state.
func InvalidAttrs(fieldID string, invalid bool) templ.Attributes {
	if !invalid {
		return templ.Attributes{"aria-invalid": "false"}
	}
	return templ.Attributes{
		"aria-invalid":     "true",
		"aria-describedby": ErrorID(fieldID),
	}
}

// GroupClass returns the class for a field's container element, adding the
// error-state marker while the field is invalid.
func GroupClass(invalid bool) string {
	if invalid {
		return "form-group form-group--error"
	}
	return "form-group"
}

// SuccessBanner renders the form-level acknowledgment shown after a
// successful submission. Status role with polite live-region semantics, per
// the same announcement rules as field errors.
func SuccessBanner(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="form-success" role="status" aria-live="polite">%s</div>`,
			templ.EscapeString(message),
		)
		return err
	})
}
