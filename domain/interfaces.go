package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
}

// WorkoutRepository defines workout session and exercise data access operations
type WorkoutRepository interface {
	ListSessions(ctx context.Context, userID uint) ([]WorkoutSession, error)
	CreateSession(ctx context.Context, session *WorkoutSession) error
	ListExercises(ctx context.Context, userID uint) ([]Exercise, error)
	CreateExercise(ctx context.Context, exercise *Exercise) error
}

// RecoveryStore is the keyed store backing the password-recovery flow.
// It holds OTP records (keyed by subject, with a secondary lookup by the
// raw recovery identifier) and per-subject rate-limit counters. All
// mutations must be atomic with respect to concurrent callers acting on
// the same key.
type RecoveryStore interface {
	// PutOTP stores a record, superseding any existing one for the subject.
	PutOTP(ctx context.Context, rec *OTPRecord) error
	// GetOTP returns the live record for a subject, or nil when absent or
	// expired. Expiry detection here is a pure read: the record is not
	// deleted, deletion is the caller's call.
	GetOTP(ctx context.Context, subjectID uint) (*OTPRecord, error)
	// GetOTPByIdentifier returns the record whose recovery identifier
	// matches exactly, expired or not, so the caller can tell an expired
	// code apart from a missing one. Returns nil when absent.
	GetOTPByIdentifier(ctx context.Context, identifier string) (*OTPRecord, error)
	DeleteOTP(ctx context.Context, subjectID uint) error
	// IncrementAttempts atomically bumps the failed-verification counter
	// and returns the new value. Returns ErrCodeNotFound if the record is
	// gone.
	IncrementAttempts(ctx context.Context, subjectID uint) (int, error)
	// GetRateLimit returns the limiter record for a subject, or nil when
	// absent. A stale window is returned as-is; callers replace it.
	GetRateLimit(ctx context.Context, subjectID uint) (*RateLimitRecord, error)
	PutRateLimit(ctx context.Context, rec *RateLimitRecord) error
	// SweepExpired deletes every OTP record whose expiry has passed and
	// returns how many were removed. Rate-limit records are left alone,
	// they self-expire by window check.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, fullName, email, phone, password string) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
}

// RecoveryService defines the OTP password-recovery lifecycle
type RecoveryService interface {
	Request(ctx context.Context, identifier string) (*RecoveryTicket, error)
	Confirm(ctx context.Context, identifier, code, newPassword string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// GoogleVerifier validates Google ID tokens for federated sign-in
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GooglePayload, error)
}
