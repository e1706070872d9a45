package domain

import "time"

// User represents an account in the system
type User struct {
	ID           uint
	FullName     string
	Email        string
	Phone        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	GoogleID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkoutSession represents a logged workout session
type WorkoutSession struct {
	ID          uint
	UserID      uint
	SessionDate time.Time
	Notes       string
	CreatedAt   time.Time
}

// Exercise represents an exercise record owned by a user
type Exercise struct {
	ID              uint
	UserID          uint
	Name            string
	Description     string
	DurationMinutes int
	CreatedAt       time.Time
}

// OTPRecord is a one-time recovery code issued for a single account.
// At most one live record exists per subject; a new issuance supersedes
// any prior unconsumed code.
type OTPRecord struct {
	Code               string
	SubjectID          uint
	RecoveryIdentifier string
	IssuedAt           time.Time
	ExpiresAt          time.Time
	Attempts           int
}

// Expired reports whether the code's validity window has passed.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// RateLimitRecord counts recovery issuance requests for one subject
// within a rolling window. A record past WindowResetAt is stale and is
// replaced wholesale on the next issuance.
type RateLimitRecord struct {
	SubjectID     uint
	Attempts      int
	WindowResetAt time.Time
}

// Expired reports whether the limiter window has elapsed.
func (r *RateLimitRecord) Expired(now time.Time) bool {
	return !now.Before(r.WindowResetAt)
}

// RecoveryTicket is the caller-visible outcome of a successful recovery request
type RecoveryTicket struct {
	SubjectID   uint
	MaskedPhone string
	ExpiresIn   int
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// GooglePayload holds the verified claims of a Google ID token
type GooglePayload struct {
	Sub           string
	Email         string
	FullName      string
	EmailVerified bool
}
