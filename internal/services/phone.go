package services

import (
	"regexp"
	"strings"
)

// IdentifierKind classifies a raw recovery identifier
type IdentifierKind int

const (
	IdentifierInvalid IdentifierKind = iota
	IdentifierEmail
	IdentifierPhone
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// PhoneNormalizer expands a raw phone number into the candidate forms the
// user store may have it saved under: leading-zero national format,
// country-calling-code format, or the bare local number.
type PhoneNormalizer struct {
	countryCode string
}

// NewPhoneNormalizer creates a normalizer for one country calling code
// (digits only, e.g. "91").
func NewPhoneNormalizer(countryCode string) *PhoneNormalizer {
	return &PhoneNormalizer{countryCode: countryCode}
}

// Normalize strips separators and returns every plausible stored variant
// of the number. Order is a lookup priority hint only; callers must try
// all variants. Malformed input still yields candidates, they just won't
// match anything.
func (n *PhoneNormalizer) Normalize(raw string) []string {
	d := nonDigitPattern.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(d, "0"):
		return []string{d, n.countryCode + d[1:], d[1:]}
	case strings.HasPrefix(d, n.countryCode):
		local := d[len(n.countryCode):]
		return []string{d, "0" + local, local}
	default:
		return []string{d, n.countryCode + d, "0" + d}
	}
}

// Classify decides whether a raw identifier is an email, a phone number
// (10-15 digits after stripping separators) or neither.
func (n *PhoneNormalizer) Classify(raw string) IdentifierKind {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return IdentifierInvalid
	}
	if emailPattern.MatchString(raw) {
		return IdentifierEmail
	}
	d := nonDigitPattern.ReplaceAllString(raw, "")
	if len(d) >= 10 && len(d) <= 15 {
		return IdentifierPhone
	}
	return IdentifierInvalid
}

// Canonical returns the country-code-prefixed form used for outbound SMS.
func (n *PhoneNormalizer) Canonical(raw string) string {
	d := nonDigitPattern.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(d, "0"):
		return "+" + n.countryCode + d[1:]
	case strings.HasPrefix(d, n.countryCode):
		return "+" + d
	default:
		return "+" + n.countryCode + d
	}
}

// Mask produces the display form of a number: first two and last four
// digits visible, the middle hidden. Numbers too short to mask that way
// are hidden entirely.
func (n *PhoneNormalizer) Mask(raw string) string {
	d := nonDigitPattern.ReplaceAllString(raw, "")
	if len(d) < 7 {
		return strings.Repeat("*", len(d))
	}
	return d[:2] + strings.Repeat("*", len(d)-6) + d[len(d)-4:]
}
