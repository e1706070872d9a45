package services

import (
	"reflect"
	"testing"
)

func TestPhoneNormalizer_Normalize(t *testing.T) {
	n := NewPhoneNormalizer("91")

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "leading zero national format",
			raw:      "09876543210",
			expected: []string{"09876543210", "919876543210", "9876543210"},
		},
		{
			name:     "country code prefixed",
			raw:      "919876543210",
			expected: []string{"919876543210", "09876543210", "9876543210"},
		},
		{
			name:     "bare local number",
			raw:      "9876543210",
			expected: []string{"9876543210", "919876543210", "09876543210"},
		},
		{
			name:     "plus and separators are stripped",
			raw:      "+91 98765-43210",
			expected: []string{"919876543210", "09876543210", "9876543210"},
		},
		{
			name:     "malformed input still yields candidates",
			raw:      "12ab34",
			expected: []string{"1234", "911234", "01234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestPhoneNormalizer_Classify(t *testing.T) {
	n := NewPhoneNormalizer("91")

	tests := []struct {
		name     string
		raw      string
		expected IdentifierKind
	}{
		{name: "email", raw: "user@example.com", expected: IdentifierEmail},
		{name: "ten digit phone", raw: "9876543210", expected: IdentifierPhone},
		{name: "phone with separators", raw: "+91 98765 43210", expected: IdentifierPhone},
		{name: "fifteen digits", raw: "123456789012345", expected: IdentifierPhone},
		{name: "too few digits", raw: "123456789", expected: IdentifierInvalid},
		{name: "too many digits", raw: "1234567890123456", expected: IdentifierInvalid},
		{name: "email missing domain dot", raw: "user@example", expected: IdentifierInvalid},
		{name: "empty", raw: "", expected: IdentifierInvalid},
		{name: "whitespace only", raw: "   ", expected: IdentifierInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Classify(tt.raw); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestPhoneNormalizer_Canonical(t *testing.T) {
	n := NewPhoneNormalizer("91")

	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "09876543210", expected: "+919876543210"},
		{raw: "919876543210", expected: "+919876543210"},
		{raw: "9876543210", expected: "+919876543210"},
		{raw: "+91 98765 43210", expected: "+919876543210"},
	}

	for _, tt := range tests {
		if got := n.Canonical(tt.raw); got != tt.expected {
			t.Errorf("Canonical(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestPhoneNormalizer_Mask(t *testing.T) {
	n := NewPhoneNormalizer("91")

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "ten digits keeps first two and last four", raw: "9876543210", expected: "98****3210"},
		{name: "twelve digits", raw: "919876543210", expected: "91******3210"},
		{name: "short number fully hidden", raw: "12345", expected: "*****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Mask(tt.raw); got != tt.expected {
				t.Errorf("Mask(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}
