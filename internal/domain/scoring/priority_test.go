//go:build unit

package scoring_test

import (
	"testing"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/scoring"
	"greenrfq/internal/domain/supplier"

	"github.com/stretchr/testify/assert"
)

func TestPriority_TierTable(t *testing.T) {
	base := scoring.PriorityInput{
		ResponseRate:      0.5,
		VerificationScore: 50,
		MatchScore:        50,
	}

	tiers := map[supplier.Tier]float64{
		supplier.TierPremium:    100,
		supplier.TierEnterprise: 100,
		supplier.TierStandard:   75,
		supplier.TierPro:        75,
		supplier.TierClaimed:    50,
		supplier.TierFree:       25,
		supplier.TierScraped:    0,
	}
	for tier, ts := range tiers {
		in := base
		in.Tier = tier
		// neutral distance 50*0.30 + tier*0.25 + 50*0.20 + 50*0.15 + 50*0.10
		want := 15.0 + ts*0.25 + 10.0 + 7.5 + 5.0
		assert.InDelta(t, want, scoring.Priority(in), 0.001, "tier %s", tier)
	}
}

func TestPriority_EntitlementTierPreferred(t *testing.T) {
	in := scoring.PriorityInput{
		Tier:            supplier.TierScraped,
		EntitlementTier: supplier.TierEnterprise,
	}
	withLegacy := in
	withLegacy.EntitlementTier = ""
	assert.Greater(t, scoring.Priority(in), scoring.Priority(withLegacy))
}

func TestPriority_MonotonicInResponseRate(t *testing.T) {
	in := scoring.PriorityInput{Tier: supplier.TierStandard, MatchScore: 60}
	prev := -1.0
	for _, rate := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		in.ResponseRate = rate
		got := scoring.Priority(in)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestPriority_MonotonicInVerificationAndMatch(t *testing.T) {
	in := scoring.PriorityInput{Tier: supplier.TierFree, ResponseRate: 0.4}

	prev := -1.0
	for _, v := range []float64{0, 20, 60, 100} {
		in.VerificationScore = v
		got := scoring.Priority(in)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	prev = -1.0
	in.VerificationScore = 50
	for _, m := range []float64{0, 30, 70, 100} {
		in.MatchScore = m
		got := scoring.Priority(in)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestPriority_ClampsOutOfRangeInputs(t *testing.T) {
	in := scoring.PriorityInput{
		Tier:              supplier.TierEnterprise,
		ResponseRate:      3.0,
		VerificationScore: 250,
		MatchScore:        180,
	}
	got := scoring.Priority(in)
	assert.LessOrEqual(t, got, 100.0)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestPriority_DistanceUsesProjectCoordinates(t *testing.T) {
	project := geo.Coordinates{Latitude: 47.61, Longitude: -122.33}
	near := geo.Coordinates{Latitude: 47.60, Longitude: -122.33}
	far := geo.Coordinates{Latitude: 35.67, Longitude: 139.65}

	in := scoring.PriorityInput{Tier: supplier.TierStandard, ProjectLocation: &project}

	in.SupplierLocation = &near
	nearScore := scoring.Priority(in)
	in.SupplierLocation = &far
	farScore := scoring.Priority(in)
	in.SupplierLocation = nil
	neutral := scoring.Priority(in)

	assert.Greater(t, nearScore, neutral)
	assert.Greater(t, neutral, farScore)
}
