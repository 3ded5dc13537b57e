package sanitize

// Apply runs value through the given transforms in order and returns the
// final result. Handy for one-off cleanups of a single field value.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose fixes a transform chain into a single function, so the cleanup
// for a field can be declared once next to its rules and reused for every
// submission.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
