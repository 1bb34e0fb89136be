package supplier

// Tier is the subscription tier stored on a supplier row. Scraped rows
// are unclaimed imports whose identity must stay masked.
type Tier string

const (
	TierScraped    Tier = "scraped"
	TierFree       Tier = "free"
	TierClaimed    Tier = "claimed"
	TierStandard   Tier = "standard"
	TierPro        Tier = "pro"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

func (t Tier) String() string {
	return string(t)
}

// IsShadow reports whether the tier marks an unclaimed supplier whose
// identity may not be disclosed.
func (t Tier) IsShadow() bool {
	return t == TierScraped || t == "shadow"
}

func (t Tier) IsValid() bool {
	switch t {
	case TierScraped, TierFree, TierClaimed, TierStandard, TierPro, TierPremium, TierEnterprise:
		return true
	default:
		return false
	}
}
