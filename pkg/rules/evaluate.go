package rules

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Evaluate applies a rule set to a field value and reports the first failing
// check, if any. Checks run in a fixed order: required, pattern, minimum
// length, maximum length. An empty optional value passes immediately, before
// any pattern or length check. Evaluate is pure: the same inputs always
// produce the same Result.
func Evaluate(value string, typ FieldType, rs RuleSet) Result {
	trimmed := strings.TrimSpace(value)

	if rs.Required && trimmed == "" {
		return fail(rs, ViolationRequired)
	}
	if trimmed == "" {
		return pass()
	}

	if rs.Pattern != nil && !fullMatch(rs.Pattern, trimmed) {
		return fail(rs, ViolationPattern)
	}

	length := effectiveLength(trimmed, typ)
	if rs.MinLength > 0 && length < rs.MinLength {
		return fail(rs, ViolationMinLength)
	}
	if rs.MaxLength > 0 && length > rs.MaxLength {
		return fail(rs, ViolationMaxLength)
	}

	return pass()
}

// effectiveLength is the length measure used for bounds checking: digit
// count for telephone fields, rune count otherwise.
func effectiveLength(trimmed string, typ FieldType) int {
	if typ == FieldTypeTel {
		digits := 0
		for _, r := range trimmed {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		return digits
	}
	return utf8.RuneCountInString(trimmed)
}

// anchoredPatterns caches the \A(?:…)\z rewrite of each pattern source, so
// repeated evaluations against the same rule set compile it once.
var anchoredPatterns sync.Map

// fullMatch requires the pattern to cover the entire value, regardless of
// whether the compiled expression carries its own anchors. The expression is
// rewritten with \A and \z rather than span-checked: a leftmost-first match
// span lies about alternations whose first branch is a prefix of a longer
// one (foo|foobar against "foobar" matches [0,3]).
func fullMatch(re *regexp.Regexp, value string) bool {
	src := re.String()
	if cached, ok := anchoredPatterns.Load(src); ok {
		return cached.(*regexp.Regexp).MatchString(value)
	}

	// An expression that compiled on its own stays valid inside a
	// non-capturing group, so this cannot fail.
	anchored := regexp.MustCompile(`\A(?:` + src + `)\z`)
	anchoredPatterns.Store(src, anchored)
	return anchored.MatchString(value)
}
