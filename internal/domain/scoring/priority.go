package scoring

import (
	"math"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/supplier"
)

// Priority weighting; fractions sum to 1.
const (
	priorityDistanceWeight     = 0.30
	priorityTierWeight         = 0.25
	priorityResponseWeight     = 0.20
	priorityMatchWeight        = 0.15
	priorityVerificationWeight = 0.10
)

var tierScore = map[supplier.Tier]float64{
	supplier.TierPremium:    100,
	supplier.TierEnterprise: 100,
	supplier.TierStandard:   75,
	supplier.TierPro:        75,
	supplier.TierClaimed:    50,
	supplier.TierFree:       25,
	supplier.TierScraped:    0,
	"shadow":                0,
}

type PriorityInput struct {
	SupplierLocation *geo.Coordinates
	ProjectLocation  *geo.Coordinates
	// EntitlementTier is preferred over Tier when non-empty.
	EntitlementTier supplier.Tier
	Tier            supplier.Tier
	// ResponseRate is a fraction in [0,1].
	ResponseRate      float64
	VerificationScore float64
	MatchScore        float64
}

// Priority ranks a supplier for one request: distance 30%, tier 25%,
// response rate 20%, match 15%, verification 10%. Pure, no I/O.
func Priority(in PriorityInput) float64 {
	dist := geo.Score(in.SupplierLocation, in.ProjectLocation)

	tier := in.Tier
	if in.EntitlementTier != "" {
		tier = in.EntitlementTier
	}
	ts, ok := tierScore[tier]
	if !ok {
		ts = tierScore[supplier.TierFree]
	}

	score := clamp(float64(dist.Score), 0, 100)*priorityDistanceWeight +
		clamp(ts, 0, 100)*priorityTierWeight +
		clamp(in.ResponseRate*100, 0, 100)*priorityResponseWeight +
		clamp(in.MatchScore, 0, 100)*priorityMatchWeight +
		clamp(in.VerificationScore, 0, 100)*priorityVerificationWeight

	return math.Round(score*100) / 100
}
