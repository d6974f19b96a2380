package valueobject

import "github.com/google/uuid"

// UniqueID identifies an entity. Both construction paths always yield a
// valid outcome: generated IDs are unique by construction, and trusted IDs
// assert uniqueness by provenance (primary keys read back from storage),
// which cannot be re-verified locally.
type UniqueID struct {
	ValueObject[string]
}

// NewUniqueID generates a fresh time-ordered identifier (UUIDv7), so IDs
// sort by creation time. The underlying entropy source is safe for
// concurrent use.
func NewUniqueID() UniqueID {
	return UniqueID{Valid(uuid.Must(uuid.NewV7()).String())}
}

// UniqueIDFromTrusted wraps an externally-sourced identifier without
// validation. Trust is the caller's responsibility.
func UniqueIDFromTrusted(id string) UniqueID {
	return UniqueID{Valid(id)}
}

// String returns the identifier.
func (id UniqueID) String() string {
	return id.MustValue()
}
