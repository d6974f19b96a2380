// Package sanitize provides composable input-normalization transforms.
//
// Transforms are plain func(T) T values chained with Apply or pre-built into
// a pipeline with Compose. Field constructors normalize raw input through
// this package before validation, so the value a rule rejects is exactly the
// value that was validated.
//
//	clean := sanitize.Apply(raw, sanitize.Trim, sanitize.CollapseWhitespace)
//
// All transforms are pure and goroutine-safe.
package sanitize
