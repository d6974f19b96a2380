package valueobject

// Rule pairs a predicate with the failure produced when the predicate is
// false. Rule constructors in this package (string_rules.go,
// collection_rules.go) build rules for common constraints; custom rules can
// be assembled inline.
type Rule[T any] struct {
	Check func(T) bool
	Fail  func(T) Failure[T]
}

// Satisfies builds a rule from an arbitrary predicate. A false predicate
// yields an InvalidValue failure carrying the given message.
func Satisfies[T any](check func(T) bool, message string) Rule[T] {
	return Rule[T]{
		Check: check,
		Fail: func(v T) Failure[T] {
			return InvalidValue[T]{FailedValue: v, Message: message}
		},
	}
}

// NotAlreadyExists fails with AlreadyExists when taken reports the value as
// occupied. Occupancy checks are the caller's concern; the rule only records
// the outcome.
func NotAlreadyExists[T any](taken func(T) bool) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool { return !taken(v) },
		Fail: func(v T) Failure[T] {
			return AlreadyExists[T]{FailedValue: v}
		},
	}
}
