package repository

import (
	"context"

	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository/converter"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionWriteQueries interface {
	GetSubscriptionForUpdate(ctx context.Context, db sqlc.DBTX, supplierID uuid.UUID) (sqlc.SupplierSubscription, error)
	UpsertSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) error
	IncrementRFQUsage(ctx context.Context, db sqlc.DBTX, supplierID uuid.UUID) (int64, error)
	IncrementOutboundUsage(ctx context.Context, db sqlc.DBTX, supplierID uuid.UUID) (int64, error)
	InsertUsageLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUsageLogParams) error
	ResetAllUsage(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	row, err := r.queries.GetSubscriptionForUpdate(ctx, tx, supplierID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}

	return converter.SubscriptionSnapshotFromRow(row), nil
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, tx sqlc.DBTX, params sqlc.UpsertSubscriptionParams) error {
	if err := r.queries.UpsertSubscription(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert subscription", err)
	}

	return nil
}

func (r *SubscriptionRepository) IncrementRFQUsage(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) error {
	affected, err := r.queries.IncrementRFQUsage(ctx, tx, supplierID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment rfq usage", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SubscriptionRepository) IncrementOutboundUsage(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID) error {
	affected, err := r.queries.IncrementOutboundUsage(ctx, tx, supplierID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment outbound usage", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SubscriptionRepository) AppendUsageLog(ctx context.Context, tx sqlc.DBTX, supplierID uuid.UUID, kind string, referenceID *uuid.UUID) error {
	err := r.queries.InsertUsageLog(ctx, tx, sqlc.InsertUsageLogParams{
		SupplierID:  supplierID,
		UsageKind:   kind,
		ReferenceID: pgconv.UUIDPtrToNull(referenceID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert usage log", err)
	}

	return nil
}

func (r *SubscriptionRepository) ResetAllUsage(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	affected, err := r.queries.ResetAllUsage(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reset monthly usage", err)
	}

	return affected, nil
}
