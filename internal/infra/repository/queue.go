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

type QueueWriteQueries interface {
	UpsertQueueEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertQueueEntryParams) (int64, error)
	SelectDueEntries(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.DistributionQueue, error)
	GetQueueEntryForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetQueueEntryForUpdateParams) (sqlc.DistributionQueue, error)
	MarkEntryNotified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEntryNotifiedParams) (int64, error)
	MarkEntryViewed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEntryViewedParams) (int64, error)
	MarkEntryResponded(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEntryRespondedParams) (int64, error)
	ExpireOverdueEntries(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type QueueRepository struct {
	queries QueueWriteQueries
	db      sqlc.DBTX
}

func NewQueueRepository(queries QueueWriteQueries, db sqlc.DBTX) *QueueRepository {
	return &QueueRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert inserts or refreshes a queue entry. Entries that already left
// the pending state are kept as-is; the returned count is 0 for those.
func (r *QueueRepository) Upsert(ctx context.Context, tx sqlc.DBTX, entry shared.QueueUpsert) (int64, error) {
	affected, err := r.queries.UpsertQueueEntry(ctx, tx, converter.QueueUpsertToParams(entry))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to upsert queue entry", err)
	}

	return affected, nil
}

func (r *QueueRepository) SelectDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.QueueEntrySnapshot, error) {
	rows, err := r.queries.SelectDueEntries(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due queue entries", err)
	}

	entries := make([]shared.QueueEntrySnapshot, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *converter.QueueEntrySnapshotFromRow(row))
	}

	return entries, nil
}

func (r *QueueRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (*shared.QueueEntrySnapshot, error) {
	row, err := r.queries.GetQueueEntryForUpdate(ctx, tx, sqlc.GetQueueEntryForUpdateParams{
		RfqID:      rfqID,
		SupplierID: supplierID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("queue entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get queue entry", err)
	}

	return converter.QueueEntrySnapshotFromRow(row), nil
}

func (r *QueueRepository) MarkNotified(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkEntryNotified(ctx, tx, sqlc.MarkEntryNotifiedParams{
		RfqID:      rfqID,
		SupplierID: supplierID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark queue entry notified", err)
	}

	return affected > 0, nil
}

func (r *QueueRepository) MarkViewed(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkEntryViewed(ctx, tx, sqlc.MarkEntryViewedParams{
		RfqID:      rfqID,
		SupplierID: supplierID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark queue entry viewed", err)
	}

	return affected > 0, nil
}

func (r *QueueRepository) MarkResponded(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkEntryResponded(ctx, tx, sqlc.MarkEntryRespondedParams{
		RfqID:      rfqID,
		SupplierID: supplierID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark queue entry responded", err)
	}

	return affected > 0, nil
}

func (r *QueueRepository) ExpireOverdue(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	affected, err := r.queries.ExpireOverdueEntries(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue queue entries", err)
	}

	return affected, nil
}
