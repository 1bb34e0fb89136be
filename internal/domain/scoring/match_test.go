//go:build unit

package scoring_test

import (
	"testing"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/scoring"
	"greenrfq/internal/domain/supplier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func componentPoints(t *testing.T, r scoring.MatchResult, name string) float64 {
	t.Helper()
	for _, c := range r.Breakdown {
		if c.Name == name {
			return c.Points
		}
	}
	t.Fatalf("component %q not in breakdown", name)
	return 0
}

func TestMatch_StrongLocalEnterpriseSupplier(t *testing.T) {
	project := geo.Coordinates{Latitude: 47.61, Longitude: -122.33}
	nearby := geo.Coordinates{Latitude: 47.60, Longitude: -122.33}

	r := scoring.Match(scoring.MatchInput{
		SupplierTier:           supplier.TierEnterprise,
		SupplierCategories:     []string{"timber"},
		SupplierCertifications: []string{"FSC", "EPD"},
		SupplierLocation:       &nearby,
		RequiredCertifications: []string{"FSC", "EPD"},
		RequestLocation:        &project,
	})

	assert.GreaterOrEqual(t, r.Total, 90.0)
	assert.Equal(t, 25.0, componentPoints(t, r, "certifications"))
	assert.Equal(t, 20.0, componentPoints(t, r, "distance"))
	assert.Len(t, r.Breakdown, 5)
}

func TestMatch_WeakFreeSupplierStaysInRange(t *testing.T) {
	project := geo.Coordinates{Latitude: 47.61, Longitude: -122.33}

	r := scoring.Match(scoring.MatchInput{
		SupplierTier:           supplier.TierFree,
		SupplierCertifications: []string{"LEED"},
		SupplierLocation:       nil,
		RequiredCertifications: []string{"FSC", "EPD"},
		RequestLocation:        &project,
	})

	assert.GreaterOrEqual(t, r.Total, 0.0)
	assert.LessOrEqual(t, r.Total, 100.0)
	assert.Equal(t, 0.0, componentPoints(t, r, "certifications"))
	assert.Equal(t, 10.0, componentPoints(t, r, "distance"), "neutral 50 rescales to 10/20")
	assert.False(t, r.Distance.HasLocation)
}

func TestMatch_CertificationTokenMatching(t *testing.T) {
	r := scoring.Match(scoring.MatchInput{
		SupplierTier:           supplier.TierStandard,
		SupplierCertifications: []string{"fsc ", "FSC-Lite"},
		RequiredCertifications: []string{"FSC", "EPD"},
	})
	// "FSC-Lite" must not count for "FSC"; "fsc " does after normalization.
	assert.Equal(t, 12.5, componentPoints(t, r, "certifications"))
}

func TestMatch_EmptyRequirementsGetFullCredit(t *testing.T) {
	r := scoring.Match(scoring.MatchInput{
		SupplierTier:       supplier.TierClaimed,
		SupplierCategories: []string{"insulation"},
	})
	assert.Equal(t, 25.0, componentPoints(t, r, "certifications"))
	assert.Equal(t, 10.0, componentPoints(t, r, "category"))
}

func TestMatch_CategoryMismatch(t *testing.T) {
	r := scoring.Match(scoring.MatchInput{
		SupplierTier:       supplier.TierPro,
		SupplierCategories: []string{"timber"},
		RequestCategory:    "concrete",
	})
	assert.Equal(t, 0.0, componentPoints(t, r, "category"))
}

func TestMatch_UnknownTierGetsLowestNonZeroBonus(t *testing.T) {
	r := scoring.Match(scoring.MatchInput{SupplierTier: supplier.Tier("legacy-gold")})
	assert.Equal(t, 2.0, componentPoints(t, r, "tier"))
}

func TestMatch_Deterministic(t *testing.T) {
	in := scoring.MatchInput{
		SupplierTier:           supplier.TierPremium,
		SupplierCategories:     []string{"steel", "timber"},
		SupplierCertifications: []string{"FSC"},
		RequestCategory:        "timber",
		RequiredCertifications: []string{"FSC", "EPD", "BREEAM"},
	}
	first := scoring.Match(in)
	second := scoring.Match(in)
	require.Equal(t, first.Total, second.Total)
	require.Equal(t, first.Breakdown, second.Breakdown)
}
