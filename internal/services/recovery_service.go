package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// RecoveryConfig groups the tunables of the OTP recovery flow
type RecoveryConfig struct {
	CodeLength    int
	TTL           time.Duration
	MaxAttempts   int
	RequestLimit  int
	RequestWindow time.Duration
}

// RecoveryServiceImpl implements domain.RecoveryService. It owns the OTP
// lifecycle: issuance with per-subject rate limiting, fire-and-forget SMS
// delivery, and retry-limited verification with terminal deletion.
type RecoveryServiceImpl struct {
	store       domain.RecoveryStore
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	notifier    domain.NotificationService
	phones      *PhoneNormalizer
	config      RecoveryConfig
}

// NewRecoveryService creates a new recovery service
func NewRecoveryService(
	store domain.RecoveryStore,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	notifier domain.NotificationService,
	phones *PhoneNormalizer,
	config RecoveryConfig,
) domain.RecoveryService {
	return &RecoveryServiceImpl{
		store:       store,
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		notifier:    notifier,
		phones:      phones,
		config:      config,
	}
}

// Request implements domain.RecoveryService. The response returns as soon
// as the code is stored; SMS delivery happens in the background and a
// delivery failure only deletes the stored code.
func (s *RecoveryServiceImpl) Request(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
	user, err := s.resolveAccount(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user.Phone == "" {
		return nil, domain.ErrNoContactMethod
	}

	now := time.Now()

	limit, err := s.store.GetRateLimit(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate limit: %w", err)
	}
	if limit != nil && !limit.Expired(now) && limit.Attempts >= s.config.RequestLimit {
		return nil, &domain.RateLimitedError{RetryAfter: limit.WindowResetAt.Sub(now)}
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recovery code: %w", err)
	}

	rec := &domain.OTPRecord{
		Code:               code,
		SubjectID:          user.ID,
		RecoveryIdentifier: identifier,
		IssuedAt:           now,
		ExpiresAt:          now.Add(s.config.TTL),
		Attempts:           0,
	}
	if err := s.store.PutOTP(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store recovery code: %w", err)
	}

	if limit == nil || limit.Expired(now) {
		limit = &domain.RateLimitRecord{
			SubjectID:     user.ID,
			Attempts:      1,
			WindowResetAt: now.Add(s.config.RequestWindow),
		}
	} else {
		limit.Attempts++
	}
	if err := s.store.PutRateLimit(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to update rate limit: %w", err)
	}

	go s.deliver(user.ID, s.phones.Canonical(user.Phone), code)

	return &domain.RecoveryTicket{
		SubjectID:   user.ID,
		MaskedPhone: s.phones.Mask(user.Phone),
		ExpiresIn:   int(s.config.TTL.Seconds()),
	}, nil
}

// Confirm implements domain.RecoveryService. The record is matched by the
// exact identifier string the caller supplied at issuance, not by
// re-resolving the account.
func (s *RecoveryServiceImpl) Confirm(ctx context.Context, identifier, code, newPassword string) error {
	rec, err := s.store.GetOTPByIdentifier(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to look up recovery code: %w", err)
	}
	if rec == nil {
		return domain.ErrCodeNotFound
	}

	if rec.Expired(time.Now()) {
		s.store.DeleteOTP(ctx, rec.SubjectID)
		return domain.ErrCodeExpired
	}

	if rec.Attempts >= s.config.MaxAttempts {
		s.store.DeleteOTP(ctx, rec.SubjectID)
		return domain.ErrTooManyAttempts
	}

	if code != rec.Code {
		attempts, err := s.store.IncrementAttempts(ctx, rec.SubjectID)
		if err != nil {
			// Record raced away between lookup and increment
			return domain.ErrCodeNotFound
		}
		if attempts >= s.config.MaxAttempts {
			s.store.DeleteOTP(ctx, rec.SubjectID)
			return domain.ErrTooManyAttempts
		}
		return &domain.MismatchError{AttemptsRemaining: s.config.MaxAttempts - attempts}
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, rec.SubjectID, hash); err != nil {
		// Keep the record: the code is still valid and unconsumed, so a
		// transient storage failure doesn't burn the user's code.
		return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}

	s.store.DeleteOTP(ctx, rec.SubjectID)
	log.Printf("PASSWORD_RECOVERED: user_id=%d timestamp=%s", rec.SubjectID, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// resolveAccount finds the account a recovery identifier refers to, trying
// every stored phone variant when the identifier is a number.
func (s *RecoveryServiceImpl) resolveAccount(ctx context.Context, identifier string) (*domain.User, error) {
	switch s.phones.Classify(identifier) {
	case IdentifierEmail:
		user, err := s.userRepo.FindByEmail(ctx, identifier)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		return user, nil
	case IdentifierPhone:
		for _, variant := range s.phones.Normalize(identifier) {
			user, err := s.userRepo.FindByPhone(ctx, variant)
			if err == nil {
				return user, nil
			}
		}
		return nil, domain.ErrUserNotFound
	default:
		return nil, domain.ErrInvalidIdentifier
	}
}

// deliver sends the code over SMS and cleans up on failure. The user never
// learns about a failed send; their later confirm attempt just reports an
// invalid code.
func (s *RecoveryServiceImpl) deliver(subjectID uint, to, code string) {
	message := fmt.Sprintf("Your PThrive recovery code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notifier.SendSMS(to, message); err != nil {
		log.Printf("RECOVERY_SMS_FAILED: user_id=%d error=%v timestamp=%s",
			subjectID, err, time.Now().UTC().Format(time.RFC3339))
		if delErr := s.store.DeleteOTP(context.Background(), subjectID); delErr != nil {
			log.Printf("RECOVERY_CLEANUP_FAILED: user_id=%d error=%v", subjectID, delErr)
		}
	}
}

// generateCode generates a cryptographically secure zero-padded code
func (s *RecoveryServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.CodeLength)

	for i := 0; i < s.config.CodeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
