package mocks

import (
	"context"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockRecoveryService implements domain.RecoveryService interface for testing
type MockRecoveryService struct {
	RequestFunc func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error)
	ConfirmFunc func(ctx context.Context, identifier, code, newPassword string) error
}

// NewMockRecoveryService creates a new MockRecoveryService with default behaviors
func NewMockRecoveryService() *MockRecoveryService {
	return &MockRecoveryService{}
}

// Request issues a recovery code
func (m *MockRecoveryService) Request(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, identifier)
	}
	// Default behavior: a plausible ticket
	return &domain.RecoveryTicket{SubjectID: 1, MaskedPhone: "98****3210", ExpiresIn: 300}, nil
}

// Confirm verifies a recovery code and resets the password
func (m *MockRecoveryService) Confirm(ctx context.Context, identifier, code, newPassword string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, identifier, code, newPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.RecoveryService = (*MockRecoveryService)(nil)
