//go:build unit || e2e

package builder

import (
	"time"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

type SupplierBuilder struct {
	ID                uuid.UUID
	CompanyName       string
	ContactEmail      string
	ContactPhone      string
	Tier              supplier.Tier
	Categories        []string
	Certifications    []string
	Location          *geo.Coordinates
	VerificationScore int32
	Verified          bool
}

func NewSupplierBuilder() *SupplierBuilder {
	return &SupplierBuilder{
		ID:                uuid.New(),
		CompanyName:       "GreenTimber BV",
		ContactEmail:      "sales@greentimber.example",
		ContactPhone:      "+31 20 555 0101",
		Tier:              supplier.TierStandard,
		Categories:        []string{"timber"},
		Certifications:    []string{"FSC"},
		Location:          &geo.Coordinates{Latitude: 52.09, Longitude: 5.12},
		VerificationScore: 80,
		Verified:          true,
	}
}

func (b *SupplierBuilder) With(mutate func(*SupplierBuilder)) *SupplierBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SupplierBuilder) BuildSnapshot() *shared.SupplierSnapshot {
	email := b.ContactEmail
	phone := b.ContactPhone
	return &shared.SupplierSnapshot{
		ID:                b.ID,
		CompanyName:       b.CompanyName,
		ContactEmail:      &email,
		ContactPhone:      &phone,
		Tier:              b.Tier,
		Categories:        b.Categories,
		Certifications:    b.Certifications,
		Location:          b.Location,
		VerificationScore: b.VerificationScore,
		Verified:          b.Verified,
	}
}

func (b *SupplierBuilder) BuildCandidate() shared.CandidateSnapshot {
	return shared.CandidateSnapshot{SupplierSnapshot: *b.BuildSnapshot()}
}

// BuildShadowCandidate marks the candidate as an unclaimed scraped record.
func (b *SupplierBuilder) BuildShadowCandidate() shared.CandidateSnapshot {
	b.Tier = supplier.TierScraped
	b.Verified = false
	optOut := shadow.OptOutActive
	claimed := shadow.StatusUnclaimed
	c := shared.CandidateSnapshot{SupplierSnapshot: *b.BuildSnapshot()}
	c.ShadowOptOutStatus = &optOut
	c.ShadowClaimedStatus = &claimed
	return c
}

func (b *SupplierBuilder) BuildIdentity() supplier.Identity {
	email := b.ContactEmail
	return supplier.Identity{
		ID:           b.ID,
		DisplayName:  b.CompanyName,
		ContactEmail: &email,
		Tier:         b.Tier,
		Verified:     b.Verified,
	}
}

// Fluent builder methods
func (b *SupplierBuilder) WithID(id uuid.UUID) *SupplierBuilder {
	b.ID = id
	return b
}

func (b *SupplierBuilder) WithCompanyName(name string) *SupplierBuilder {
	b.CompanyName = name
	return b
}

func (b *SupplierBuilder) WithTier(tier supplier.Tier) *SupplierBuilder {
	b.Tier = tier
	return b
}

func (b *SupplierBuilder) WithCategories(categories ...string) *SupplierBuilder {
	b.Categories = categories
	return b
}

func (b *SupplierBuilder) WithCertifications(certs ...string) *SupplierBuilder {
	b.Certifications = certs
	return b
}

func (b *SupplierBuilder) WithLocation(lat, lon float64) *SupplierBuilder {
	b.Location = &geo.Coordinates{Latitude: lat, Longitude: lon}
	return b
}

func (b *SupplierBuilder) AsFreeTier() *SupplierBuilder {
	b.Tier = supplier.TierFree
	return b
}

func (b *SupplierBuilder) AsPremium() *SupplierBuilder {
	b.Tier = supplier.TierPremium
	return b
}

type SubscriptionBuilder struct {
	SupplierID             uuid.UUID
	TierCode               supplier.Tier
	WaveNumber             int32
	VisibilityDelayMinutes int32
	RFQMonthlyQuota        *int32
	RFQsUsedThisMonth      int32
	OutboundMonthlyQuota   *int32
	OutboundUsedThisMonth  int32
	Active                 bool
	UsageResetAt           *time.Time
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	return &SubscriptionBuilder{
		SupplierID: uuid.New(),
		TierCode:   supplier.TierStandard,
		WaveNumber: 2,
		Active:     true,
	}
}

func (b *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(b)
	return b
}

func (b *SubscriptionBuilder) BuildSnapshot() *shared.SubscriptionSnapshot {
	return &shared.SubscriptionSnapshot{
		SupplierID:             b.SupplierID,
		TierCode:               b.TierCode,
		WaveNumber:             b.WaveNumber,
		VisibilityDelayMinutes: b.VisibilityDelayMinutes,
		RFQMonthlyQuota:        b.RFQMonthlyQuota,
		RFQsUsedThisMonth:      b.RFQsUsedThisMonth,
		OutboundMonthlyQuota:   b.OutboundMonthlyQuota,
		OutboundUsedThisMonth:  b.OutboundUsedThisMonth,
		Active:                 b.Active,
		UsageResetAt:           b.UsageResetAt,
	}
}

func (b *SubscriptionBuilder) WithSupplierID(id uuid.UUID) *SubscriptionBuilder {
	b.SupplierID = id
	return b
}

func (b *SubscriptionBuilder) WithQuota(rfqQuota, used int32) *SubscriptionBuilder {
	b.RFQMonthlyQuota = &rfqQuota
	b.RFQsUsedThisMonth = used
	return b
}

func (b *SubscriptionBuilder) AsFreeTier() *SubscriptionBuilder {
	quota := int32(10)
	outbound := int32(20)
	b.TierCode = supplier.TierFree
	b.WaveNumber = 3
	b.VisibilityDelayMinutes = 30
	b.RFQMonthlyQuota = &quota
	b.OutboundMonthlyQuota = &outbound
	return b
}

func (b *SubscriptionBuilder) AsInactive() *SubscriptionBuilder {
	b.Active = false
	return b
}
