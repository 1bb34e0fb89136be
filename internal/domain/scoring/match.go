package scoring

import (
	"fmt"
	"strings"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/supplier"
)

// Component weights; the five maxima sum to 100.
const (
	PoolWeight     = 35.0
	CertWeight     = 25.0
	DistanceWeight = 20.0
	CategoryWeight = 10.0
	TierWeight     = 10.0
)

var tierBonus = map[supplier.Tier]float64{
	supplier.TierEnterprise: 10,
	supplier.TierPremium:    10,
	supplier.TierPro:        8,
	supplier.TierStandard:   6,
	supplier.TierClaimed:    4,
	supplier.TierFree:       2,
	supplier.TierScraped:    0,
}

// unknownTierBonus is the lowest non-zero bonus in the table.
const unknownTierBonus = 2.0

type MatchComponent struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
	Reason string  `json:"reason"`
}

type MatchResult struct {
	Total     float64          `json:"total"`
	Breakdown []MatchComponent `json:"breakdown"`
	Distance  geo.Result       `json:"-"`
}

type MatchInput struct {
	SupplierTier           supplier.Tier
	SupplierCategories     []string
	SupplierCertifications []string
	SupplierLocation       *geo.Coordinates
	RequestCategory        string
	RequiredCertifications []string
	RequestLocation        *geo.Coordinates
}

// Match combines pool membership, certification overlap, proximity,
// category fit and tier into a clamped 0-100 score with a retained
// per-component breakdown. Identical inputs always produce identical
// output.
func Match(in MatchInput) MatchResult {
	breakdown := make([]MatchComponent, 0, 5)

	breakdown = append(breakdown, MatchComponent{
		Name:   "candidate_pool",
		Points: PoolWeight,
		Max:    PoolWeight,
		Reason: "appears in the candidate pool for this request",
	})

	certPoints, certReason := certificationScore(in.SupplierCertifications, in.RequiredCertifications)
	breakdown = append(breakdown, MatchComponent{
		Name:   "certifications",
		Points: certPoints,
		Max:    CertWeight,
		Reason: certReason,
	})

	dist := geo.Score(in.SupplierLocation, in.RequestLocation)
	distPoints := float64(dist.Score) * DistanceWeight / 100.0
	distReason := "no location data, neutral proximity"
	if dist.HasLocation {
		distReason = fmt.Sprintf("%.1f km from the project site", *dist.DistanceKm)
	}
	breakdown = append(breakdown, MatchComponent{
		Name:   "distance",
		Points: distPoints,
		Max:    DistanceWeight,
		Reason: distReason,
	})

	catPoints, catReason := categoryScore(in.SupplierCategories, in.RequestCategory)
	breakdown = append(breakdown, MatchComponent{
		Name:   "category",
		Points: catPoints,
		Max:    CategoryWeight,
		Reason: catReason,
	})

	bonus, ok := tierBonus[in.SupplierTier]
	if !ok {
		bonus = unknownTierBonus
	}
	breakdown = append(breakdown, MatchComponent{
		Name:   "tier",
		Points: bonus,
		Max:    TierWeight,
		Reason: fmt.Sprintf("subscription tier %q", in.SupplierTier),
	})

	total := 0.0
	for _, c := range breakdown {
		total += c.Points
	}
	return MatchResult{Total: clamp(total, 0, 100), Breakdown: breakdown, Distance: dist}
}

// certificationScore grants credit proportional to required certifications
// matched; exact token match, case-insensitive. Full credit when the
// request requires none.
func certificationScore(have, required []string) (float64, string) {
	if len(required) == 0 {
		return CertWeight, "no certifications required"
	}
	normalized := make(map[string]struct{}, len(have))
	for _, c := range have {
		normalized[normalizeToken(c)] = struct{}{}
	}
	matched := 0
	for _, r := range required {
		if _, ok := normalized[normalizeToken(r)]; ok {
			matched++
		}
	}
	points := CertWeight * float64(matched) / float64(len(required))
	return points, fmt.Sprintf("%d of %d required certifications", matched, len(required))
}

func categoryScore(have []string, want string) (float64, string) {
	if want == "" {
		return CategoryWeight, "no category specified"
	}
	for _, c := range have {
		if normalizeToken(c) == normalizeToken(want) {
			return CategoryWeight, fmt.Sprintf("supplies category %q", want)
		}
	}
	return 0, fmt.Sprintf("does not supply category %q", want)
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
