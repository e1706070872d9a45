package services

import (
	"context"
	"log"
	"time"

	"github.com/antojoseph2806/PThrive/domain"
)

// Sweeper periodically purges expired recovery codes so the store cannot
// grow without bound on codes no one will ever verify.
type Sweeper struct {
	store    domain.RecoveryStore
	interval time.Duration
}

// NewSweeper creates a sweeper running on the given period
func NewSweeper(store domain.RecoveryStore, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval. A failure
// or panic in one pass is logged and the next pass still runs on schedule.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("RECOVERY_SWEEP_PANIC: %v", r)
		}
	}()

	removed, err := s.store.SweepExpired(ctx, time.Now())
	if err != nil {
		log.Printf("RECOVERY_SWEEP_FAILED: error=%v", err)
		return
	}
	if removed > 0 {
		log.Printf("recovery: swept %d expired codes", removed)
	}
}
