// Package fields provides ready-made value object types for common form
// fields: email address, password, person name, short and long text, and
// bounded tag lists.
//
// Each type embeds valueobject.ValueObject, so the full outcome API
// (IsValid, Validate, MustValue, Err, Equal) is available directly on the
// field. Constructors normalize input through pkg/sanitize before
// validation, so the failed value reported on rejection is the normalized
// input, not the raw keystrokes.
//
//	email := fields.NewEmailAddress("  User@Example.COM ")
//	if msg := email.Validate(); msg != "" {
//	    // render msg next to the field
//	}
package fields
