package fields

import "github.com/valuekit/valuekit/pkg/valueobject"

// Bounds for the Tags field type.
const (
	MinTags = 1
	MaxTags = 10
)

// Tags is a bounded list of non-empty labels attached to an entity.
type Tags struct {
	valueobject.ValueObject[[]string]
}

// NewTags validates tags as a bounded list: at least MinTags, at most
// MaxTags, every tag a non-empty single line. Bounds are checked before
// item rules, so an empty list reports ListTooShort.
func NewTags(tags []string) Tags {
	return Tags{valueobject.New(tags,
		valueobject.MinItems[string](MinTags),
		valueobject.MaxItems[string](MaxTags),
		valueobject.EachItem(valueobject.NotEmpty()),
	)}
}

// NewBoundedList wraps any slice with explicit bounds, for callers whose
// limits are not the Tags defaults.
func NewBoundedList[E any](items []E, min, max int) valueobject.ValueObject[[]E] {
	return valueobject.New(items,
		valueobject.MinItems[E](min),
		valueobject.MaxItems[E](max),
	)
}
