package sanitize

import "strings"

// NormalizeEmail lowercases an address and consolidates consecutive dots in
// the local part. Input that does not look like an address is returned
// trimmed and lowercased, so validation still sees the original shape.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := dotRegex.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// NormalizePhone strips formatting so phone numbers compare consistently.
func NormalizePhone(phone string) string {
	return DigitsOnly(phone)
}
