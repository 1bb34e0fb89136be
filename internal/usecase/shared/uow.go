package shared

import (
	"context"
	"time"

	"greenrfq/internal/domain/rfq"
	sqlc "greenrfq/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	RFQs() RFQRepository
	Queue() QueueRepository
	Suppliers() SupplierRepository
	Subscriptions() SubscriptionRepository
	Stats() StatsRepository
	Shadows() ShadowRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RFQByID(ctx context.Context, id uuid.UUID) (*RFQSnapshot, error)
	SupplierByID(ctx context.Context, id uuid.UUID) (*SupplierSnapshot, error)
	SuppliersByIDs(ctx context.Context, ids []uuid.UUID) ([]SupplierSnapshot, error)
	CandidateSuppliers(ctx context.Context, category *string, materials []string, limit int32) ([]CandidateSnapshot, error)
	SubscriptionBySupplier(ctx context.Context, supplierID uuid.UUID) (*SubscriptionSnapshot, error)
	QueueMetrics(ctx context.Context, supplierID uuid.UUID) (*QueueMetricsSnapshot, error)
	ResponseStatsBatch(ctx context.Context, supplierIDs []uuid.UUID) ([]ResponseStatsSnapshot, error)
	ShadowByID(ctx context.Context, id uuid.UUID) (*ShadowSnapshot, error)
	ShadowByEmail(ctx context.Context, email string) (*ShadowSnapshot, error)
	ShadowBySupplierID(ctx context.Context, supplierID uuid.UUID) (*ShadowSnapshot, error)
}

type RFQRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rfq.RFQ) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status rfq.Status) error
	CreateResponse(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID, priceCents *int64, leadTimeDays *int32, message string) (uuid.UUID, error)
}

// QueueUpsert is the enqueue payload for one candidate.
type QueueUpsert struct {
	RFQID          uuid.UUID
	SupplierID     uuid.UUID
	WaveNumber     int32
	VisibleAt      time.Time
	ExpiresAt      time.Time
	AccessLevel    string
	MatchScore     float64
	PriorityScore  float64
	ScoreBreakdown []byte
	DistanceKm     *float64
	TierSnapshot   string
	WaveReason     string
}

type QueueRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, entry QueueUpsert) (int64, error)
	SelectDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]QueueEntrySnapshot, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (*QueueEntrySnapshot, error)
	MarkNotified(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error)
	MarkViewed(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error)
	MarkResponded(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error)
	ExpireOverdue(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateSupplierParams) (uuid.UUID, error)
	UpdateTier(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, tier string) error
}

type SubscriptionRepository interface {
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) (*SubscriptionSnapshot, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, params sqlc.UpsertSubscriptionParams) error
	IncrementRFQUsage(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) error
	IncrementOutboundUsage(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) error
	AppendUsageLog(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID, kind string, referenceID *uuid.UUID) error
	ResetAllUsage(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type StatsRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, stats ResponseStatsSnapshot) error
}

type ShadowRepository interface {
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ShadowSnapshot, error)
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateShadowSupplierParams) (uuid.UUID, error)
	UpdateIngestionFields(ctx context.Context, tx sqlc.DBTX, params sqlc.UpdateShadowIngestionFieldsParams) (bool, error)
	UpdateClaimAttempts(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attempts int32, lockedUntil *time.Time) error
	SetPendingVerification(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	CompleteClaim(ctx context.Context, tx sqlc.DBTX, id, linkedSupplierID uuid.UUID) (bool, error)
	OptOut(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) (bool, error)
	InvalidateActiveTokens(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID) (int64, error)
	CreateToken(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, tokenHash string, expiresAt time.Time) (uuid.UUID, error)
	TokenByHashForUpdate(ctx context.Context, tx sqlc.DBTX, tokenHash string) (*ClaimTokenSnapshot, error)
	ConsumeToken(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID) (bool, error)
	SetVerificationCode(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID, code string, expiresAt time.Time) (bool, error)
	ClearVerificationCode(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID) error
	CountTokensIssuedSince(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, since time.Time) (int64, error)
	AppendAudit(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, action, actor string, success bool, reason string) error
	SetProductsVisibility(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, visibility string) (int64, error)
}
