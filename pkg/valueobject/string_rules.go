package valueobject

import (
	"regexp"
	"strings"
	"unicode"
)

// NotEmpty fails with Empty for a string that is empty after trimming
// whitespace.
func NotEmpty() Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return strings.TrimSpace(v) != ""
		},
		Fail: func(v string) Failure[string] {
			return Empty[string]{FailedValue: v}
		},
	}
}

// Alphabetic fails with MustBeAlphabetic unless every rune is a letter.
// Empty strings pass; pair with NotEmpty when the value is required.
func Alphabetic() Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			for _, r := range v {
				if !unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
		Fail: func(v string) Failure[string] {
			return MustBeAlphabetic[string]{FailedValue: v}
		},
	}
}

// MinLen fails with MinLength for a string shorter than min runes.
func MinLen(min int) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return len([]rune(v)) >= min
		},
		Fail: func(v string) Failure[string] {
			return MinLength[string]{FailedValue: v, Min: min}
		},
	}
}

// MaxLen fails with MaxLength for a string longer than max runes.
func MaxLen(max int) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return len([]rune(v)) <= max
		},
		Fail: func(v string) Failure[string] {
			return MaxLength[string]{FailedValue: v, Max: max}
		},
	}
}

// NoWhitespace fails with ContainsWhitespace when the string contains any
// whitespace rune.
func NoWhitespace() Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return strings.IndexFunc(v, unicode.IsSpace) == -1
		},
		Fail: func(v string) Failure[string] {
			return ContainsWhitespace[string]{FailedValue: v}
		},
	}
}

// SingleLine fails with Multiline when the string contains a line break.
func SingleLine() Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return !strings.ContainsAny(v, "\n\r")
		},
		Fail: func(v string) Failure[string] {
			return Multiline[string]{FailedValue: v}
		},
	}
}

// MatchesRegex fails with InvalidValue carrying the given message unless the
// pattern matches. The pattern is compiled by the caller so hot paths can
// reuse it.
func MatchesRegex(pattern *regexp.Regexp, message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return pattern.MatchString(v)
		},
		Fail: func(v string) Failure[string] {
			return InvalidValue[string]{FailedValue: v, Message: message}
		},
	}
}
