package mocks

import (
	"context"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc        func(ctx context.Context, fullName, email, phone, password string) (*domain.AuthResult, error)
	LoginFunc           func(ctx context.Context, identifier, password string) (*domain.AuthResult, error)
	LoginWithGoogleFunc func(ctx context.Context, idToken string) (*domain.AuthResult, error)
	GetProfileFunc      func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func defaultAuthResult() *domain.AuthResult {
	return &domain.AuthResult{
		User: &domain.User{
			ID:       1,
			FullName: "Test User",
			Email:    "test@example.com",
			Phone:    "9876543210",
			Role:     "user",
		},
		Token:     "test-token",
		ExpiresIn: 7 * 24 * 3600,
	}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, fullName, email, phone, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, fullName, email, phone, password)
	}
	return defaultAuthResult(), nil
}

// Login authenticates a user by email or phone
func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return defaultAuthResult(), nil
}

// LoginWithGoogle authenticates via a Google ID token
func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	if m.LoginWithGoogleFunc != nil {
		return m.LoginWithGoogleFunc(ctx, idToken)
	}
	return defaultAuthResult(), nil
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return defaultAuthResult().User, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
