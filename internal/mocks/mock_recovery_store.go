package mocks

import (
	"context"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockRecoveryStore implements domain.RecoveryStore interface for testing
type MockRecoveryStore struct {
	PutOTPFunc             func(ctx context.Context, rec *domain.OTPRecord) error
	GetOTPFunc             func(ctx context.Context, subjectID uint) (*domain.OTPRecord, error)
	GetOTPByIdentifierFunc func(ctx context.Context, identifier string) (*domain.OTPRecord, error)
	DeleteOTPFunc          func(ctx context.Context, subjectID uint) error
	IncrementAttemptsFunc  func(ctx context.Context, subjectID uint) (int, error)
	GetRateLimitFunc       func(ctx context.Context, subjectID uint) (*domain.RateLimitRecord, error)
	PutRateLimitFunc       func(ctx context.Context, rec *domain.RateLimitRecord) error
	SweepExpiredFunc       func(ctx context.Context, now time.Time) (int, error)
}

// NewMockRecoveryStore creates a new MockRecoveryStore with default behaviors
func NewMockRecoveryStore() *MockRecoveryStore {
	return &MockRecoveryStore{}
}

// PutOTP stores a recovery code record
func (m *MockRecoveryStore) PutOTP(ctx context.Context, rec *domain.OTPRecord) error {
	if m.PutOTPFunc != nil {
		return m.PutOTPFunc(ctx, rec)
	}
	return nil
}

// GetOTP returns the live record for a subject
func (m *MockRecoveryStore) GetOTP(ctx context.Context, subjectID uint) (*domain.OTPRecord, error) {
	if m.GetOTPFunc != nil {
		return m.GetOTPFunc(ctx, subjectID)
	}
	return nil, nil
}

// GetOTPByIdentifier returns the record matching an identifier
func (m *MockRecoveryStore) GetOTPByIdentifier(ctx context.Context, identifier string) (*domain.OTPRecord, error) {
	if m.GetOTPByIdentifierFunc != nil {
		return m.GetOTPByIdentifierFunc(ctx, identifier)
	}
	return nil, nil
}

// DeleteOTP removes a record
func (m *MockRecoveryStore) DeleteOTP(ctx context.Context, subjectID uint) error {
	if m.DeleteOTPFunc != nil {
		return m.DeleteOTPFunc(ctx, subjectID)
	}
	return nil
}

// IncrementAttempts bumps the failed-verification counter
func (m *MockRecoveryStore) IncrementAttempts(ctx context.Context, subjectID uint) (int, error) {
	if m.IncrementAttemptsFunc != nil {
		return m.IncrementAttemptsFunc(ctx, subjectID)
	}
	return 0, domain.ErrCodeNotFound
}

// GetRateLimit returns the limiter record for a subject
func (m *MockRecoveryStore) GetRateLimit(ctx context.Context, subjectID uint) (*domain.RateLimitRecord, error) {
	if m.GetRateLimitFunc != nil {
		return m.GetRateLimitFunc(ctx, subjectID)
	}
	return nil, nil
}

// PutRateLimit stores a limiter record
func (m *MockRecoveryStore) PutRateLimit(ctx context.Context, rec *domain.RateLimitRecord) error {
	if m.PutRateLimitFunc != nil {
		return m.PutRateLimitFunc(ctx, rec)
	}
	return nil
}

// SweepExpired purges expired records
func (m *MockRecoveryStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	if m.SweepExpiredFunc != nil {
		return m.SweepExpiredFunc(ctx, now)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.RecoveryStore = (*MockRecoveryStore)(nil)
