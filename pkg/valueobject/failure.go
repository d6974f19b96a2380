package valueobject

import "fmt"

// Failure describes exactly one violated constraint together with the value
// that violated it. The set of implementations in this package is closed:
// consumers type-switch over the variants and rely on the unexported marker
// method to keep the switch exhaustive.
//
// Every Failure implements error so it can travel through ordinary error
// returns and errors.As chains.
type Failure[T any] interface {
	error

	// Rejected returns the input that failed validation.
	Rejected() T

	failure()
}

// Empty reports that a required value was empty.
type Empty[T any] struct {
	FailedValue T
}

func (f Empty[T]) Error() string { return "must not be empty" }
func (f Empty[T]) Rejected() T   { return f.FailedValue }
func (f Empty[T]) failure()      {}

// InvalidValue reports a value rejected by an arbitrary predicate; the
// message explains the expected shape.
type InvalidValue[T any] struct {
	FailedValue T
	Message     string
}

func (f InvalidValue[T]) Error() string { return f.Message }
func (f InvalidValue[T]) Rejected() T   { return f.FailedValue }
func (f InvalidValue[T]) failure()      {}

// MustBeAlphabetic reports a value containing non-letter characters.
type MustBeAlphabetic[T any] struct {
	FailedValue T
}

func (f MustBeAlphabetic[T]) Error() string { return "must contain only letters" }
func (f MustBeAlphabetic[T]) Rejected() T   { return f.FailedValue }
func (f MustBeAlphabetic[T]) failure()      {}

// MinLength reports a value shorter than the allowed minimum.
type MinLength[T any] struct {
	FailedValue T
	Min         int
}

func (f MinLength[T]) Error() string {
	return fmt.Sprintf("must be at least %d characters long", f.Min)
}
func (f MinLength[T]) Rejected() T { return f.FailedValue }
func (f MinLength[T]) failure()    {}

// MaxLength reports a value longer than the allowed maximum.
type MaxLength[T any] struct {
	FailedValue T
	Max         int
}

func (f MaxLength[T]) Error() string {
	return fmt.Sprintf("must be at most %d characters long", f.Max)
}
func (f MaxLength[T]) Rejected() T { return f.FailedValue }
func (f MaxLength[T]) failure()    {}

// ContainsWhitespace reports a value that must not contain whitespace but
// does.
type ContainsWhitespace[T any] struct {
	FailedValue T
}

func (f ContainsWhitespace[T]) Error() string { return "must not contain whitespace" }
func (f ContainsWhitespace[T]) Rejected() T   { return f.FailedValue }
func (f ContainsWhitespace[T]) failure()      {}

// Multiline reports a value spanning multiple lines where a single line is
// required.
type Multiline[T any] struct {
	FailedValue T
}

func (f Multiline[T]) Error() string { return "must be a single line" }
func (f Multiline[T]) Rejected() T   { return f.FailedValue }
func (f Multiline[T]) failure()      {}

// AlreadyExists reports a value that collides with one already taken.
type AlreadyExists[T any] struct {
	FailedValue T
}

func (f AlreadyExists[T]) Error() string { return "is already taken" }
func (f AlreadyExists[T]) Rejected() T   { return f.FailedValue }
func (f AlreadyExists[T]) failure()      {}

// ListTooShort reports a collection with fewer items than the allowed
// minimum.
type ListTooShort[T any] struct {
	FailedValue T
	Min         int
}

func (f ListTooShort[T]) Error() string {
	return fmt.Sprintf("must have at least %d items", f.Min)
}
func (f ListTooShort[T]) Rejected() T { return f.FailedValue }
func (f ListTooShort[T]) failure()    {}

// ListTooLong reports a collection with more items than the allowed maximum.
type ListTooLong[T any] struct {
	FailedValue T
	Max         int
}

func (f ListTooLong[T]) Error() string {
	return fmt.Sprintf("must have at most %d items", f.Max)
}
func (f ListTooLong[T]) Rejected() T { return f.FailedValue }
func (f ListTooLong[T]) failure()    {}
