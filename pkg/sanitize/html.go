package sanitize

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = sync.OnceValue(func() *bluemonday.Policy {
	return bluemonday.StrictPolicy()
})

// StripHTML removes every HTML element and attribute from free-text input,
// keeping only the text content. Use it on fields that are rendered back
// into markup, such as the contact-form message.
func StripHTML(s string) string {
	// bluemonday entity-encodes the surviving text; decode so length checks
	// and storage see the characters the user actually typed.
	return html.UnescapeString(strictPolicy().Sanitize(s))
}

// EscapeHTML escapes HTML special characters for direct interpolation into
// markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
