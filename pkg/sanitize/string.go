package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	dotRegex        = regexp.MustCompile(`\.+`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// NormalizeUnicode converts a string to NFC so that visually identical
// input always measures the same rune count during length checks.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// DigitsOnly strips every non-digit character. This is the effective-length
// source for telephone fields: "+1 (234) 567-8900" becomes "12345678900".
func DigitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
