package valueobject_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valuekit/valuekit/pkg/valueobject"
)

func TestNotEmpty(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.True(t, valueobject.NotEmpty().Check("hello"))
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := valueobject.NotEmpty()
		assert.False(t, rule.Check(""))
		assert.Equal(t, valueobject.Empty[string]{FailedValue: ""}, rule.Fail(""))
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, valueobject.NotEmpty().Check("   "))
	})
}

func TestAlphabetic(t *testing.T) {
	t.Run("passes for letters only", func(t *testing.T) {
		assert.True(t, valueobject.Alphabetic().Check("John"))
	})

	t.Run("passes for non-latin letters", func(t *testing.T) {
		assert.True(t, valueobject.Alphabetic().Check("Søren"))
	})

	t.Run("fails for digits", func(t *testing.T) {
		rule := valueobject.Alphabetic()
		assert.False(t, rule.Check("John123"))
		assert.Equal(t, valueobject.MustBeAlphabetic[string]{FailedValue: "John123"}, rule.Fail("John123"))
	})

	t.Run("fails for embedded spaces", func(t *testing.T) {
		assert.False(t, valueobject.Alphabetic().Check("John Doe"))
	})

	t.Run("passes vacuously for empty string", func(t *testing.T) {
		assert.True(t, valueobject.Alphabetic().Check(""))
	})
}

func TestMinLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, valueobject.MinLen(5).Check("12345"))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		rule := valueobject.MinLen(5)
		assert.False(t, rule.Check("1234"))
		assert.Equal(t, valueobject.MinLength[string]{FailedValue: "1234", Min: 5}, rule.Fail("1234"))
	})

	t.Run("counts runes, not bytes", func(t *testing.T) {
		assert.True(t, valueobject.MinLen(3).Check("äöü"))
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, valueobject.MaxLen(5).Check("12345"))
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		rule := valueobject.MaxLen(5)
		assert.False(t, rule.Check("123456"))
		assert.Equal(t, valueobject.MaxLength[string]{FailedValue: "123456", Max: 5}, rule.Fail("123456"))
	})

	t.Run("counts runes, not bytes", func(t *testing.T) {
		assert.True(t, valueobject.MaxLen(3).Check("äöü"))
	})
}

func TestNoWhitespace(t *testing.T) {
	t.Run("passes without whitespace", func(t *testing.T) {
		assert.True(t, valueobject.NoWhitespace().Check("john_doe"))
	})

	t.Run("fails for inner space", func(t *testing.T) {
		rule := valueobject.NoWhitespace()
		assert.False(t, rule.Check("john doe"))
		assert.Equal(t, valueobject.ContainsWhitespace[string]{FailedValue: "john doe"}, rule.Fail("john doe"))
	})

	t.Run("fails for tab and newline", func(t *testing.T) {
		assert.False(t, valueobject.NoWhitespace().Check("a\tb"))
		assert.False(t, valueobject.NoWhitespace().Check("a\nb"))
	})
}

func TestSingleLine(t *testing.T) {
	t.Run("passes for one line", func(t *testing.T) {
		assert.True(t, valueobject.SingleLine().Check("a single line"))
	})

	t.Run("fails for line feed", func(t *testing.T) {
		rule := valueobject.SingleLine()
		assert.False(t, rule.Check("two\nlines"))
		assert.Equal(t, valueobject.Multiline[string]{FailedValue: "two\nlines"}, rule.Fail("two\nlines"))
	})

	t.Run("fails for carriage return", func(t *testing.T) {
		assert.False(t, valueobject.SingleLine().Check("two\rlines"))
	})
}

func TestMatchesRegex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]+$`)

	t.Run("passes on match", func(t *testing.T) {
		assert.True(t, valueobject.MatchesRegex(hexPattern, "must be hex").Check("deadbeef"))
	})

	t.Run("fails with the given message", func(t *testing.T) {
		rule := valueobject.MatchesRegex(hexPattern, "must be hex")
		assert.False(t, rule.Check("nope!"))
		assert.Equal(t,
			valueobject.InvalidValue[string]{FailedValue: "nope!", Message: "must be hex"},
			rule.Fail("nope!"))
	})
}

func TestSatisfies(t *testing.T) {
	t.Run("wraps an arbitrary predicate", func(t *testing.T) {
		even := valueobject.Satisfies(func(n int) bool { return n%2 == 0 }, "must be even")

		assert.True(t, even.Check(4))
		assert.False(t, even.Check(5))
		assert.Equal(t, valueobject.InvalidValue[int]{FailedValue: 5, Message: "must be even"}, even.Fail(5))
	})
}

func TestNotAlreadyExists(t *testing.T) {
	taken := map[string]bool{"admin": true}
	rule := valueobject.NotAlreadyExists(func(v string) bool { return taken[v] })

	t.Run("passes for a free value", func(t *testing.T) {
		assert.True(t, rule.Check("alice"))
	})

	t.Run("fails for an occupied value", func(t *testing.T) {
		assert.False(t, rule.Check("admin"))
		assert.Equal(t, valueobject.AlreadyExists[string]{FailedValue: "admin"}, rule.Fail("admin"))
	})
}
