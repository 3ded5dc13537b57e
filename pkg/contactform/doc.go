// Package contactform implements the landing page's contact form: the
// frozen validation rule table for its five fields, whole-form validation
// of a Submission, and the Controller that orchestrates the field-level
// interaction flow around the pure engine in pkg/rules.
//
// The rule table is constant data built once at package init and exposed
// read-only through Rules. Per-field evaluation stops at the first failing
// check, while whole-form validation evaluates every field and surfaces all
// errors at once.
//
// The Controller owns per-field runtime state (current value, touched flag,
// whether an error is displayed) and reacts to the interaction events a
// form surface produces: focus marks a field touched, blur validates it,
// input re-validates after a debounce quiet window once an error is
// showing, and submit runs whole-form validation. A passing submit raises a
// transient success acknowledgment and schedules a full reset after a fixed
// delay. All failures are recoverable; the controller never panics, and a
// controller constructed without a form surface degrades to a logged no-op.
package contactform
