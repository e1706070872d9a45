package mocks

import (
	"fmt"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, role string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate creates a token for a user
func (m *MockTokenService) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token_%d_%s", userID, role), nil
}

// Validate validates a token and returns its claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Role:      "user",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
