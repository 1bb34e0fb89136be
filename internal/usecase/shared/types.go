package shared

import (
	"time"

	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/rfq"
	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/domain/supplier"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type RFQSnapshot struct {
	ID                     uuid.UUID
	BuyerID                uuid.UUID
	Title                  string
	Description            *string
	Category               *string
	Materials              []string
	CertificationsRequired []string
	Location               *geo.Coordinates
	ProjectAddress         *string
	BudgetMaxCents         *int64
	Deadline               *time.Time
	Status                 rfq.Status
	CreatedAt              time.Time
}

type SupplierSnapshot struct {
	ID                uuid.UUID
	CompanyName       string
	ContactEmail      *string
	ContactPhone      *string
	Tier              supplier.Tier
	Categories        []string
	Certifications    []string
	Location          *geo.Coordinates
	VerificationScore int32
	Verified          bool
}

// CandidateSnapshot is a supplier annotated with its shadow lifecycle
// state for candidate selection.
type CandidateSnapshot struct {
	SupplierSnapshot
	ShadowOptOutStatus  *shadow.OptOutStatus
	ShadowClaimedStatus *shadow.ClaimStatus
}

type SubscriptionSnapshot struct {
	SupplierID             uuid.UUID
	TierCode               supplier.Tier
	WaveNumber             int32
	VisibilityDelayMinutes int32
	RFQMonthlyQuota        *int32
	RFQsUsedThisMonth      int32
	OutboundMonthlyQuota   *int32
	OutboundUsedThisMonth  int32
	Features               []byte
	Active                 bool
	UsageResetAt           *time.Time
}

type QueueEntrySnapshot struct {
	RFQID          uuid.UUID
	SupplierID     uuid.UUID
	WaveNumber     int32
	VisibleAt      time.Time
	ExpiresAt      time.Time
	Status         distribution.Status
	AccessLevel    supplier.AccessLevel
	MatchScore     float64
	PriorityScore  float64
	ScoreBreakdown []byte
	DistanceKm     *float64
	TierSnapshot   supplier.Tier
	WaveReason     *string
	NotifiedAt     *time.Time
	ViewedAt       *time.Time
	RespondedAt    *time.Time
}

type QueueMetricsSnapshot struct {
	ReceivedCount      int64
	RespondedCount     int64
	AvgResponseMinutes *float64
}

type ShadowSnapshot struct {
	ID                 uuid.UUID
	SupplierID         uuid.UUID
	CompanyName        string
	Email              *string
	Phone              *string
	Website            *string
	Source             *string
	ClaimedStatus      shadow.ClaimStatus
	OptOutStatus       shadow.OptOutStatus
	ClaimAttempts      int32
	LockedUntil        *time.Time
	LastClaimAttemptAt *time.Time
	LinkedSupplierID   *uuid.UUID
}

// Record converts the snapshot into the claim rule input.
func (s ShadowSnapshot) Record() shadow.Record {
	return shadow.Record{
		ClaimedStatus: s.ClaimedStatus,
		OptOutStatus:  s.OptOutStatus,
		ClaimAttempts: s.ClaimAttempts,
		LockedUntil:   s.LockedUntil,
	}
}

type ClaimTokenSnapshot struct {
	ID                    uuid.UUID
	ShadowSupplierID      uuid.UUID
	Status                shadow.TokenStatus
	ExpiresAt             time.Time
	VerificationCode      *string
	VerificationExpiresAt *time.Time
	CreatedAt             time.Time
}

// Token converts the snapshot into the token rule input.
func (t ClaimTokenSnapshot) Token() shadow.Token {
	return shadow.Token{
		Status:                t.Status,
		ExpiresAt:             t.ExpiresAt,
		VerificationCode:      t.VerificationCode,
		VerificationExpiresAt: t.VerificationExpiresAt,
	}
}

type ResponseStatsSnapshot struct {
	SupplierID         uuid.UUID
	ReceivedCount      int32
	RespondedCount     int32
	ResponseRate       float64
	AvgResponseMinutes *float64
}
