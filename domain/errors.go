package domain

import (
	"errors"
	"fmt"
	"time"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Recovery errors
var (
	ErrInvalidIdentifier = errors.New("identifier is not a valid email or phone number")
	ErrNoContactMethod   = errors.New("no phone number registered for this account")
	ErrCodeNotFound      = errors.New("recovery code is invalid or has expired")
	ErrCodeExpired       = errors.New("recovery code has expired")
	ErrTooManyAttempts   = errors.New("maximum verification attempts exceeded")
	ErrUpdateFailed      = errors.New("password update failed")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// RateLimitedError is returned when a subject has exhausted its recovery
// issuance quota for the current window.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many recovery requests, retry in %s", e.RetryAfter.Round(time.Second))
}

// MismatchError is returned when a submitted recovery code does not match
// the issued one. AttemptsRemaining counts the guesses left before the
// record is discarded.
type MismatchError struct {
	AttemptsRemaining int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("incorrect recovery code, %d attempts remaining", e.AttemptsRemaining)
}
