package sanitize

// Apply runs value through the given transforms in order, feeding each
// result into the next.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline from the given transforms. Prefer this
// over repeated Apply calls when the same chain normalizes many inputs.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
