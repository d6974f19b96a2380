package fields

import (
	"unicode"

	"github.com/valuekit/valuekit/pkg/sanitize"
	"github.com/valuekit/valuekit/pkg/valueobject"
)

// Length limits for the text field types, in runes.
const (
	MaxPersonNameLen = 50
	MaxShortTextLen  = 30
	MaxLongTextLen   = 1000
)

// PersonName is a validated human name: non-empty, letters and spaces only,
// bounded length.
type PersonName struct {
	valueobject.ValueObject[string]
}

// NewPersonName trims, collapses inner whitespace, and title-cases raw
// before validating. Rules run in order: presence, alphabetic words, then
// length; the first violation wins.
func NewPersonName(raw string) PersonName {
	clean := sanitize.Apply(raw,
		sanitize.Trim,
		sanitize.CollapseWhitespace,
		sanitize.TitleCase,
	)
	return PersonName{valueobject.New(clean,
		valueobject.NotEmpty(),
		alphabeticWords(),
		valueobject.MaxLen(MaxPersonNameLen),
	)}
}

// alphabeticWords accepts space-separated words of letters, so "Anna Maria"
// passes while "John123" fails with MustBeAlphabetic.
func alphabeticWords() valueobject.Rule[string] {
	return valueobject.Rule[string]{
		Check: func(v string) bool {
			for _, r := range v {
				if r != ' ' && !unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
		Fail: func(v string) valueobject.Failure[string] {
			return valueobject.MustBeAlphabetic[string]{FailedValue: v}
		},
	}
}

// ShortText is a single-line label such as a task name: non-empty, one line,
// at most MaxShortTextLen runes.
type ShortText struct {
	valueobject.ValueObject[string]
}

// NewShortText trims raw and validates it as a short single-line label.
func NewShortText(raw string) ShortText {
	clean := sanitize.Apply(raw, sanitize.Trim)
	return ShortText{valueobject.New(clean,
		valueobject.NotEmpty(),
		valueobject.SingleLine(),
		valueobject.MaxLen(MaxShortTextLen),
	)}
}

// LongText is a free-form body such as a note: non-empty, at most
// MaxLongTextLen runes, line breaks allowed.
type LongText struct {
	valueobject.ValueObject[string]
}

// NewLongText validates raw as a bounded body. Only the ends are trimmed;
// interior formatting is preserved.
func NewLongText(raw string) LongText {
	clean := sanitize.Apply(raw, sanitize.Trim)
	return LongText{valueobject.New(clean,
		valueobject.NotEmpty(),
		valueobject.MaxLen(MaxLongTextLen),
	)}
}
