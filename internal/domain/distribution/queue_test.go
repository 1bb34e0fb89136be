//go:build unit

package distribution_test

import (
	"testing"
	"time"

	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/domain/supplier"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	d := distribution.StatusPending
	assert.True(t, d.CanTransitionTo(distribution.StatusNotified))
	assert.True(t, d.CanTransitionTo(distribution.StatusResponded))
	assert.False(t, d.CanTransitionTo(distribution.StatusPending))

	n := distribution.StatusNotified
	assert.True(t, n.CanTransitionTo(distribution.StatusViewed))
	assert.False(t, n.CanTransitionTo(distribution.StatusPending))

	v := distribution.StatusViewed
	assert.True(t, v.CanTransitionTo(distribution.StatusResponded))
	assert.False(t, v.CanTransitionTo(distribution.StatusNotified))

	r := distribution.StatusResponded
	assert.False(t, r.CanTransitionTo(distribution.StatusExpired), "responded entries never expire")

	assert.False(t, distribution.Status("bogus").CanTransitionTo(distribution.StatusNotified))
	assert.False(t, distribution.StatusPending.CanTransitionTo(distribution.Status("bogus")))
}

func TestFallbackWave(t *testing.T) {
	tests := []struct {
		tier  supplier.Tier
		wave  int32
		delay time.Duration
	}{
		{supplier.TierEnterprise, 1, 0},
		{supplier.TierPremium, 1, 0},
		{supplier.TierPro, 2, 10 * time.Minute},
		{supplier.TierStandard, 2, 10 * time.Minute},
		{supplier.TierClaimed, 3, 20 * time.Minute},
		{supplier.TierScraped, 4, 60 * time.Minute},
		{supplier.Tier("unknown"), 3, 30 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			w := distribution.FallbackWave(tt.tier)
			assert.Equal(t, tt.wave, w.Wave)
			assert.Equal(t, tt.delay, w.Delay)
			assert.NotEmpty(t, w.Reason)
		})
	}
}

func TestWaveAssignmentWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	w := distribution.WaveAssignment{Wave: 2, Delay: 15 * time.Minute}

	visibleAt, expiresAt := w.Window(now, 0)
	assert.Equal(t, now.Add(15*time.Minute), visibleAt)
	assert.Equal(t, visibleAt.Add(48*time.Hour), expiresAt)

	visibleAt, expiresAt = w.Window(now, 24*time.Hour)
	assert.Equal(t, visibleAt.Add(24*time.Hour), expiresAt)
}
