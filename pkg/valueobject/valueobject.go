package valueobject

import (
	"fmt"
	"reflect"
)

// ValueObject holds the outcome of validated construction: either a value of
// type T that passed every rule, or the Failure produced by the first rule
// that rejected it. Instances are immutable; "changing" a value means
// constructing a new one.
//
// When T is comparable the zero-cost struct comparison works as expected, so
// value objects over comparable payloads can serve as map keys. For
// non-comparable payloads (slices), use Equal.
type ValueObject[T any] struct {
	value   T
	failure Failure[T]
}

// New validates raw against the given rules in order. The first failing rule
// short-circuits and its failure becomes the held outcome; a value object
// never aggregates several violations for one input. New itself never fails.
func New[T any](raw T, rules ...Rule[T]) ValueObject[T] {
	for _, rule := range rules {
		if !rule.Check(raw) {
			return ValueObject[T]{failure: rule.Fail(raw)}
		}
	}
	return ValueObject[T]{value: raw}
}

// Valid wraps a value that needs no validation, placing it directly on the
// valid side.
func Valid[T any](v T) ValueObject[T] {
	return ValueObject[T]{value: v}
}

// Invalid wraps an already-determined failure.
func Invalid[T any](f Failure[T]) ValueObject[T] {
	return ValueObject[T]{failure: f}
}

// IsValid reports whether the outcome holds a value.
func (v ValueObject[T]) IsValid() bool {
	return v.failure == nil
}

// Value returns the held value and whether it is valid. The value is
// meaningful only when ok is true.
func (v ValueObject[T]) Value() (value T, ok bool) {
	return v.value, v.failure == nil
}

// MustValue returns the valid value and panics if the outcome is a failure.
// It is the single fatal path in this package: call it only after IsValid
// has been established, or deliberately, where an invalid value means a
// logic bug rather than bad user input.
func (v ValueObject[T]) MustValue() T {
	if v.failure != nil {
		panic(fmt.Sprintf("valueobject: MustValue called on invalid value object: %s (rejected value: %v)",
			v.failure.Error(), v.failure.Rejected()))
	}
	return v.value
}

// Err projects the outcome into an ordinary error return: nil when valid,
// the held Failure otherwise. Useful in combinator-style chains where only
// pass/fail matters.
func (v ValueObject[T]) Err() error {
	if v.failure != nil {
		return v.failure
	}
	return nil
}

// Failure returns the held failure and whether the outcome is invalid.
func (v ValueObject[T]) Failure() (Failure[T], bool) {
	return v.failure, v.failure != nil
}

// Validate returns the display message for an invalid outcome, or the empty
// string when valid. Every failure variant yields a message; presentation
// code can render the result directly next to a form field.
func (v ValueObject[T]) Validate() string {
	if v.failure == nil {
		return ""
	}
	return v.failure.Error()
}

// Equal reports structural equality of outcomes: both valid with equal
// values, or both holding identical failures.
func (v ValueObject[T]) Equal(other ValueObject[T]) bool {
	if (v.failure == nil) != (other.failure == nil) {
		return false
	}
	if v.failure != nil {
		return reflect.DeepEqual(v.failure, other.failure)
	}
	return reflect.DeepEqual(v.value, other.value)
}
