package domain

import (
	"testing"
	"time"
)

func TestOTPRecord_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		expired   bool
	}{
		{
			name:      "live record",
			expiresAt: now.Add(5 * time.Minute),
			expired:   false,
		},
		{
			name:      "past expiry",
			expiresAt: now.Add(-time.Second),
			expired:   true,
		},
		{
			name:      "exactly at expiry is still live",
			expiresAt: now,
			expired:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &OTPRecord{
				Code:      "123456",
				SubjectID: 1,
				IssuedAt:  now.Add(-time.Minute),
				ExpiresAt: tt.expiresAt,
			}
			if got := rec.Expired(now); got != tt.expired {
				t.Errorf("Expired() = %v, want %v", got, tt.expired)
			}
		})
	}
}

func TestRateLimitRecord_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		windowResetAt time.Time
		expired       bool
	}{
		{
			name:          "live window",
			windowResetAt: now.Add(time.Hour),
			expired:       false,
		},
		{
			name:          "stale window",
			windowResetAt: now.Add(-time.Minute),
			expired:       true,
		},
		{
			name:          "window boundary counts as elapsed",
			windowResetAt: now,
			expired:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &RateLimitRecord{
				SubjectID:     1,
				Attempts:      3,
				WindowResetAt: tt.windowResetAt,
			}
			if got := rec.Expired(now); got != tt.expired {
				t.Errorf("Expired() = %v, want %v", got, tt.expired)
			}
		})
	}
}
