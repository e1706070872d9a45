package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antojoseph2806/PThrive/domain"
)

// RedisRecoveryStore implements domain.RecoveryStore on Redis so recovery
// state can be shared across processes. Each OTP record is a hash keyed by
// subject with a secondary identifier index key; HIncrBy gives the atomic
// per-key attempt counter. Keys carry twice the code TTL so Confirm can
// still tell an expired code apart from a missing one before Redis evicts
// it; SweepExpired is therefore a no-op here.
type RedisRecoveryStore struct {
	client *redis.Client
	ttl    time.Duration
	window time.Duration
}

const (
	otpKeyPrefix   = "recovery:otp:"
	identKeyPrefix = "recovery:ident:"
	limitKeyPrefix = "recovery:rl:"
)

// NewRedisRecoveryStore creates a Redis-backed recovery store. ttl is the
// code validity window, window the rate-limit window.
func NewRedisRecoveryStore(client *redis.Client, ttl, window time.Duration) *RedisRecoveryStore {
	return &RedisRecoveryStore{client: client, ttl: ttl, window: window}
}

func otpKey(subjectID uint) string   { return fmt.Sprintf("%s%d", otpKeyPrefix, subjectID) }
func identKey(ident string) string   { return identKeyPrefix + ident }
func limitKey(subjectID uint) string { return fmt.Sprintf("%s%d", limitKeyPrefix, subjectID) }

// PutOTP implements domain.RecoveryStore
func (s *RedisRecoveryStore) PutOTP(ctx context.Context, rec *domain.OTPRecord) error {
	// Drop the old identifier index before superseding
	if old, err := s.GetOTP(ctx, rec.SubjectID); err == nil && old != nil {
		s.client.Del(ctx, identKey(old.RecoveryIdentifier))
	}

	retention := 2 * s.ttl
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, otpKey(rec.SubjectID), map[string]interface{}{
		"code":       rec.Code,
		"subject_id": rec.SubjectID,
		"identifier": rec.RecoveryIdentifier,
		"issued_at":  rec.IssuedAt.Unix(),
		"expires_at": rec.ExpiresAt.Unix(),
		"attempts":   rec.Attempts,
	})
	pipe.Expire(ctx, otpKey(rec.SubjectID), retention)
	pipe.Set(ctx, identKey(rec.RecoveryIdentifier), rec.SubjectID, retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store recovery code: %w", err)
	}
	return nil
}

// GetOTP implements domain.RecoveryStore
func (s *RedisRecoveryStore) GetOTP(ctx context.Context, subjectID uint) (*domain.OTPRecord, error) {
	rec, err := s.readOTP(ctx, otpKey(subjectID))
	if err != nil || rec == nil {
		return nil, err
	}
	if rec.Expired(time.Now()) {
		return nil, nil
	}
	return rec, nil
}

// GetOTPByIdentifier implements domain.RecoveryStore
func (s *RedisRecoveryStore) GetOTPByIdentifier(ctx context.Context, identifier string) (*domain.OTPRecord, error) {
	subjectID, err := s.client.Get(ctx, identKey(identifier)).Uint64()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recovery identifier: %w", err)
	}
	rec, err := s.readOTP(ctx, otpKey(uint(subjectID)))
	if err != nil || rec == nil {
		return nil, err
	}
	if rec.RecoveryIdentifier != identifier {
		// Index points at a superseded record issued for another identifier
		return nil, nil
	}
	return rec, nil
}

// DeleteOTP implements domain.RecoveryStore
func (s *RedisRecoveryStore) DeleteOTP(ctx context.Context, subjectID uint) error {
	rec, err := s.readOTP(ctx, otpKey(subjectID))
	if err != nil {
		return err
	}
	keys := []string{otpKey(subjectID)}
	if rec != nil {
		keys = append(keys, identKey(rec.RecoveryIdentifier))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete recovery code: %w", err)
	}
	return nil
}

// IncrementAttempts implements domain.RecoveryStore
func (s *RedisRecoveryStore) IncrementAttempts(ctx context.Context, subjectID uint) (int, error) {
	exists, err := s.client.Exists(ctx, otpKey(subjectID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check recovery code: %w", err)
	}
	if exists == 0 {
		return 0, domain.ErrCodeNotFound
	}
	n, err := s.client.HIncrBy(ctx, otpKey(subjectID), "attempts", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	return int(n), nil
}

// GetRateLimit implements domain.RecoveryStore
func (s *RedisRecoveryStore) GetRateLimit(ctx context.Context, subjectID uint) (*domain.RateLimitRecord, error) {
	vals, err := s.client.HGetAll(ctx, limitKey(subjectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read rate limit: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	attempts, _ := strconv.Atoi(vals["attempts"])
	resetAt, _ := strconv.ParseInt(vals["window_reset_at"], 10, 64)
	return &domain.RateLimitRecord{
		SubjectID:     subjectID,
		Attempts:      attempts,
		WindowResetAt: time.Unix(resetAt, 0),
	}, nil
}

// PutRateLimit implements domain.RecoveryStore
func (s *RedisRecoveryStore) PutRateLimit(ctx context.Context, rec *domain.RateLimitRecord) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, limitKey(rec.SubjectID), map[string]interface{}{
		"attempts":        rec.Attempts,
		"window_reset_at": rec.WindowResetAt.Unix(),
	})
	pipe.Expire(ctx, limitKey(rec.SubjectID), s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store rate limit: %w", err)
	}
	return nil
}

// SweepExpired implements domain.RecoveryStore. Redis key TTLs already
// bound memory growth, so there is nothing to do.
func (s *RedisRecoveryStore) SweepExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (s *RedisRecoveryStore) readOTP(ctx context.Context, key string) (*domain.OTPRecord, error) {
	vals, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recovery code: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	subjectID, _ := strconv.ParseUint(vals["subject_id"], 10, 32)
	issuedAt, _ := strconv.ParseInt(vals["issued_at"], 10, 64)
	expiresAt, _ := strconv.ParseInt(vals["expires_at"], 10, 64)
	attempts, _ := strconv.Atoi(vals["attempts"])
	return &domain.OTPRecord{
		Code:               vals["code"],
		SubjectID:          uint(subjectID),
		RecoveryIdentifier: vals["identifier"],
		IssuedAt:           time.Unix(issuedAt, 0),
		ExpiresAt:          time.Unix(expiresAt, 0),
		Attempts:           attempts,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.RecoveryStore = (*RedisRecoveryStore)(nil)
