//go:build unit || e2e

package builder

import (
	"time"

	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/domain/supplier"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/usecase/queries"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QueueEntryBuilder struct {
	RFQID         uuid.UUID
	SupplierID    uuid.UUID
	WaveNumber    int32
	VisibleAt     time.Time
	ExpiresAt     time.Time
	Status        distribution.Status
	AccessLevel   supplier.AccessLevel
	MatchScore    float64
	PriorityScore float64
	DistanceKm    *float64
	TierSnapshot  supplier.Tier
	WaveReason    string
}

func NewQueueEntryBuilder() *QueueEntryBuilder {
	now := time.Now()
	distance := 12.5
	return &QueueEntryBuilder{
		RFQID:         uuid.New(),
		SupplierID:    uuid.New(),
		WaveNumber:    1,
		VisibleAt:     now,
		ExpiresAt:     now.Add(48 * time.Hour),
		Status:        distribution.StatusPending,
		AccessLevel:   supplier.AccessFull,
		MatchScore:    72.5,
		PriorityScore: 0.64,
		DistanceKm:    &distance,
		TierSnapshot:  supplier.TierStandard,
		WaveReason:    "tier wave",
	}
}

func (b *QueueEntryBuilder) With(mutate func(*QueueEntryBuilder)) *QueueEntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QueueEntryBuilder) BuildSnapshot() *shared.QueueEntrySnapshot {
	reason := b.WaveReason
	return &shared.QueueEntrySnapshot{
		RFQID:         b.RFQID,
		SupplierID:    b.SupplierID,
		WaveNumber:    b.WaveNumber,
		VisibleAt:     b.VisibleAt,
		ExpiresAt:     b.ExpiresAt,
		Status:        b.Status,
		AccessLevel:   b.AccessLevel,
		MatchScore:    b.MatchScore,
		PriorityScore: b.PriorityScore,
		DistanceKm:    b.DistanceKm,
		TierSnapshot:  b.TierSnapshot,
		WaveReason:    &reason,
	}
}

func (b *QueueEntryBuilder) BuildInfra() sqlc.DistributionQueue {
	row := sqlc.DistributionQueue{
		RfqID:         b.RFQID,
		SupplierID:    b.SupplierID,
		WaveNumber:    b.WaveNumber,
		VisibleAt:     pgtype.Timestamptz{Time: b.VisibleAt, Valid: true},
		ExpiresAt:     pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
		Status:        string(b.Status),
		AccessLevel:   string(b.AccessLevel),
		MatchScore:    b.MatchScore,
		PriorityScore: b.PriorityScore,
		TierSnapshot:  string(b.TierSnapshot),
		WaveReason:    pgtype.Text{String: b.WaveReason, Valid: b.WaveReason != ""},
		CreatedAt:     pgtype.Timestamptz{Time: b.VisibleAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.VisibleAt, Valid: true},
	}
	if b.DistanceKm != nil {
		row.DistanceKm = pgtype.Float8{Float64: *b.DistanceKm, Valid: true}
	}
	return row
}

func (b *QueueEntryBuilder) BuildEntryView(supplierName string) queries.QueueEntryView {
	reason := b.WaveReason
	return queries.QueueEntryView{
		SupplierID:    b.SupplierID,
		SupplierName:  supplierName,
		WaveNumber:    b.WaveNumber,
		VisibleAt:     b.VisibleAt,
		ExpiresAt:     b.ExpiresAt,
		Status:        string(b.Status),
		AccessLevel:   string(b.AccessLevel),
		MatchScore:    b.MatchScore,
		PriorityScore: b.PriorityScore,
		DistanceKm:    b.DistanceKm,
		WaveReason:    &reason,
	}
}

func (b *QueueEntryBuilder) BuildVisibleItem(title string) *queries.VisibleRFQItem {
	item := &queries.VisibleRFQItem{
		RFQID:       b.RFQID,
		AccessLevel: string(b.AccessLevel),
		Status:      string(b.Status),
		VisibleAt:   b.VisibleAt,
		ExpiresAt:   b.ExpiresAt,
		MatchScore:  b.MatchScore,
	}
	if b.AccessLevel == supplier.AccessOutreachOnly {
		item.ClaimPrompt = true
		return item
	}
	item.Title = &title
	return item
}

// Fluent builder methods
func (b *QueueEntryBuilder) WithRFQID(id uuid.UUID) *QueueEntryBuilder {
	b.RFQID = id
	return b
}

func (b *QueueEntryBuilder) WithSupplierID(id uuid.UUID) *QueueEntryBuilder {
	b.SupplierID = id
	return b
}

func (b *QueueEntryBuilder) WithWave(wave int32) *QueueEntryBuilder {
	b.WaveNumber = wave
	return b
}

func (b *QueueEntryBuilder) WithVisibility(visibleAt, expiresAt time.Time) *QueueEntryBuilder {
	b.VisibleAt = visibleAt
	b.ExpiresAt = expiresAt
	return b
}

func (b *QueueEntryBuilder) WithStatus(status distribution.Status) *QueueEntryBuilder {
	b.Status = status
	return b
}

func (b *QueueEntryBuilder) AsOutreachOnly() *QueueEntryBuilder {
	b.WaveNumber = 4
	b.AccessLevel = supplier.AccessOutreachOnly
	b.TierSnapshot = supplier.TierScraped
	b.WaveReason = "unclaimed shadow profile"
	return b
}

func (b *QueueEntryBuilder) AsNotified() *QueueEntryBuilder {
	b.Status = distribution.StatusNotified
	return b
}
