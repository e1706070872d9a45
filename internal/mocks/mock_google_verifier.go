package mocks

import (
	"context"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockGoogleVerifier implements domain.GoogleVerifier interface for testing
type MockGoogleVerifier struct {
	VerifyFunc func(ctx context.Context, idToken string) (*domain.GooglePayload, error)
}

// NewMockGoogleVerifier creates a new MockGoogleVerifier with default behaviors
func NewMockGoogleVerifier() *MockGoogleVerifier {
	return &MockGoogleVerifier{}
}

// Verify validates a Google ID token
func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*domain.GooglePayload, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, idToken)
	}
	// Default behavior: a verified test identity
	return &domain.GooglePayload{
		Sub:           "google-sub-1",
		Email:         "test@example.com",
		FullName:      "Test User",
		EmailVerified: true,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.GoogleVerifier = (*MockGoogleVerifier)(nil)
