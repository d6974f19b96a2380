package fields

import (
	"net/mail"
	"strings"

	"github.com/valuekit/valuekit/pkg/sanitize"
	"github.com/valuekit/valuekit/pkg/valueobject"
)

// MinPasswordLen is the minimum accepted password length in runes.
const MinPasswordLen = 6

// EmailAddress is a validated, normalized email address.
type EmailAddress struct {
	valueobject.ValueObject[string]
}

// NewEmailAddress trims and lowercases raw, then validates it as an email
// address. Invalid input yields an InvalidValue failure with a
// display-ready message.
func NewEmailAddress(raw string) EmailAddress {
	clean := sanitize.Apply(raw, sanitize.Trim, sanitize.ToLower)
	return EmailAddress{valueobject.New(clean,
		valueobject.Satisfies(isEmailAddress, "must be a valid email address"),
	)}
}

// isEmailAddress accepts addresses that parse under RFC 5322 and look like
// typical web-form input: non-empty local part and a dotted domain.
func isEmailAddress(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// Password is a validated plaintext password. It is a transient input value;
// hashing and storage belong to the caller.
type Password struct {
	valueobject.ValueObject[string]
}

// NewPassword validates raw as a password: no surrounding-whitespace
// normalization is applied, since whitespace may be intentional.
func NewPassword(raw string) Password {
	return Password{valueobject.New(raw,
		valueobject.NotEmpty(),
		valueobject.MinLen(MinPasswordLen),
	)}
}
