package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the ends, so "  John   Doe " becomes "John Doe".
func CollapseWhitespace(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}

// TitleCase capitalizes the first letter of each word using Unicode-aware
// case mapping. A fresh caser is built per call; cases.Caser is stateful and
// not safe to share across goroutines.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// StripLineBreaks replaces line breaks with single spaces, flattening
// multi-line input into one line.
func StripLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
