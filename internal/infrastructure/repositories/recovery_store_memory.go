package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// MemoryRecoveryStore implements domain.RecoveryStore in process memory.
// Recovery state is volatile by design: a restart discards every in-flight
// code and rate-limit window. A single mutex serializes mutations so
// per-key read-modify-write operations cannot lose updates under
// concurrent verification attempts.
type MemoryRecoveryStore struct {
	mu           sync.RWMutex
	otps         map[uint]*domain.OTPRecord
	byIdentifier map[string]uint
	limits       map[uint]*domain.RateLimitRecord
}

// NewMemoryRecoveryStore creates an empty in-memory recovery store
func NewMemoryRecoveryStore() *MemoryRecoveryStore {
	return &MemoryRecoveryStore{
		otps:         make(map[uint]*domain.OTPRecord),
		byIdentifier: make(map[string]uint),
		limits:       make(map[uint]*domain.RateLimitRecord),
	}
}

// PutOTP implements domain.RecoveryStore
func (s *MemoryRecoveryStore) PutOTP(_ context.Context, rec *domain.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Supersede: drop the identifier index of any prior record first, the
	// raw identifier may have changed between issuance requests.
	if old, ok := s.otps[rec.SubjectID]; ok {
		delete(s.byIdentifier, old.RecoveryIdentifier)
	}

	cp := *rec
	s.otps[rec.SubjectID] = &cp
	s.byIdentifier[rec.RecoveryIdentifier] = rec.SubjectID
	return nil
}

// GetOTP implements domain.RecoveryStore. Expired records read as absent
// but are not deleted here; deletion stays with the caller or the sweep.
func (s *MemoryRecoveryStore) GetOTP(_ context.Context, subjectID uint) (*domain.OTPRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.otps[subjectID]
	if !ok || rec.Expired(time.Now()) {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// GetOTPByIdentifier implements domain.RecoveryStore
func (s *MemoryRecoveryStore) GetOTPByIdentifier(_ context.Context, identifier string) (*domain.OTPRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjectID, ok := s.byIdentifier[identifier]
	if !ok {
		return nil, nil
	}
	rec, ok := s.otps[subjectID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// DeleteOTP implements domain.RecoveryStore
func (s *MemoryRecoveryStore) DeleteOTP(_ context.Context, subjectID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.otps[subjectID]; ok {
		delete(s.byIdentifier, rec.RecoveryIdentifier)
		delete(s.otps, subjectID)
	}
	return nil
}

// IncrementAttempts implements domain.RecoveryStore
func (s *MemoryRecoveryStore) IncrementAttempts(_ context.Context, subjectID uint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.otps[subjectID]
	if !ok {
		return 0, domain.ErrCodeNotFound
	}
	rec.Attempts++
	return rec.Attempts, nil
}

// GetRateLimit implements domain.RecoveryStore
func (s *MemoryRecoveryStore) GetRateLimit(_ context.Context, subjectID uint) (*domain.RateLimitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.limits[subjectID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// PutRateLimit implements domain.RecoveryStore
func (s *MemoryRecoveryStore) PutRateLimit(_ context.Context, rec *domain.RateLimitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.limits[rec.SubjectID] = &cp
	return nil
}

// SweepExpired implements domain.RecoveryStore
func (s *MemoryRecoveryStore) SweepExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for subjectID, rec := range s.otps {
		if rec.Expired(now) {
			delete(s.byIdentifier, rec.RecoveryIdentifier)
			delete(s.otps, subjectID)
			removed++
		}
	}
	return removed, nil
}

// Compile-time interface compliance verification
var _ domain.RecoveryStore = (*MemoryRecoveryStore)(nil)
