// Package valueobject makes invalid state unrepresentable for value types:
// a value of type T is wrapped together with the outcome of validating it,
// so code downstream of construction can treat the payload as trusted
// without re-checking.
//
// Construction runs an ordered list of rules against raw input. The first
// failing rule short-circuits and its Failure becomes the held outcome;
// failures are never aggregated, so one value object reports exactly one
// violated constraint. Construction itself never returns an error and never
// panics.
//
// # Architecture
//
// Rule families live in dedicated files (`string_rules.go`,
// `collection_rules.go`), each exported constructor returning a small Rule
// value pairing a predicate with the failure it produces. There is no hidden
// global state; the package is stateless and goroutine-safe. The only shared
// resource is the entropy source behind NewUniqueID, which is thread-safe on
// its own.
//
// Core building blocks:
//   - ValueObject[T] – immutable holder of a valid T or a Failure[T]
//   - Failure[T]     – closed set of typed, data-carrying rejection reasons
//   - Rule[T]        – predicate plus the failure built when it is false
//   - UniqueID       – always-valid identifier value object (UUIDv7)
//
// # Usage
//
//	name := valueobject.New(raw,
//	    valueobject.NotEmpty(),
//	    valueobject.Alphabetic(),
//	    valueobject.MaxLen(50),
//	)
//	if !name.IsValid() {
//	    fieldError = name.Validate() // display message for the form field
//	    return
//	}
//	store(name.MustValue())
//
// # Error Handling
//
// Expected failures are values: every Failure implements error and is
// returned, never thrown. Consumers type-switch over the closed variant set
// to drive control flow or render messages; the unexported marker method
// keeps the set closed. The single fatal path is MustValue, which panics
// with full diagnostics when called on a known-invalid object — a logic bug,
// not a user error.
//
// # Equality
//
// Outcomes compare structurally: two value objects are equal iff both are
// valid with equal values or both hold the same failure with equal fields.
// For comparable payloads the struct itself is comparable and can key maps;
// Equal covers slice-backed payloads.
package valueobject
