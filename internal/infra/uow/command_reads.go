package uow

import (
	"context"

	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository/converter"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// commandReads serves the lookups command handlers need for validation.
// Reads run against the surrounding transaction when obtained via
// Tx.Reads, otherwise straight against the pool.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) RFQByID(ctx context.Context, id uuid.UUID) (*shared.RFQSnapshot, error) {
	row, err := r.uow.q.GetRFQByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rfq not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rfq", err)
	}

	return converter.RFQSnapshotFromRow(row), nil
}

func (r *commandReads) SupplierByID(ctx context.Context, id uuid.UUID) (*shared.SupplierSnapshot, error) {
	row, err := r.uow.q.GetSupplierByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get supplier", err)
	}

	return converter.SupplierSnapshotFromRow(row), nil
}

func (r *commandReads) SuppliersByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.SupplierSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.uow.q.GetSuppliersByIDs(ctx, r.dbtx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get suppliers", err)
	}

	snapshots := make([]shared.SupplierSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, *converter.SupplierSnapshotFromRow(row))
	}

	return snapshots, nil
}

func (r *commandReads) CandidateSuppliers(ctx context.Context, category *string, materials []string, limit int32) ([]shared.CandidateSnapshot, error) {
	params := sqlc.FindCandidateSuppliersParams{
		Materials: materials,
		RowLimit:  limit,
	}
	if category != nil {
		params.Category = pgtype.Text{String: *category, Valid: true}
	}

	rows, err := r.uow.q.FindCandidateSuppliers(ctx, r.dbtx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidate suppliers", err)
	}

	candidates := make([]shared.CandidateSnapshot, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, converter.CandidateSnapshotFromRow(row))
	}

	return candidates, nil
}

func (r *commandReads) SubscriptionBySupplier(ctx context.Context, supplierID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	row, err := r.uow.q.GetSubscriptionBySupplier(ctx, r.dbtx, supplierID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}

	return converter.SubscriptionSnapshotFromRow(row), nil
}

func (r *commandReads) QueueMetrics(ctx context.Context, supplierID uuid.UUID) (*shared.QueueMetricsSnapshot, error) {
	row, err := r.uow.q.GetSupplierQueueMetrics(ctx, r.dbtx, supplierID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get supplier queue metrics", err)
	}

	return converter.QueueMetricsFromRow(row), nil
}

func (r *commandReads) ResponseStatsBatch(ctx context.Context, supplierIDs []uuid.UUID) ([]shared.ResponseStatsSnapshot, error) {
	if len(supplierIDs) == 0 {
		return nil, nil
	}

	rows, err := r.uow.q.GetResponseStatsBatch(ctx, r.dbtx, supplierIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get response stats", err)
	}

	stats := make([]shared.ResponseStatsSnapshot, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, converter.ResponseStatsSnapshotFromRow(row))
	}

	return stats, nil
}

func (r *commandReads) ShadowByID(ctx context.Context, id uuid.UUID) (*shared.ShadowSnapshot, error) {
	row, err := r.uow.q.GetShadowByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shadow supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shadow supplier", err)
	}

	return converter.ShadowSnapshotFromRow(row), nil
}

func (r *commandReads) ShadowByEmail(ctx context.Context, email string) (*shared.ShadowSnapshot, error) {
	row, err := r.uow.q.GetShadowByEmail(ctx, r.dbtx, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shadow supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shadow supplier by email", err)
	}

	return converter.ShadowSnapshotFromRow(row), nil
}

func (r *commandReads) ShadowBySupplierID(ctx context.Context, supplierID uuid.UUID) (*shared.ShadowSnapshot, error) {
	row, err := r.uow.q.GetShadowBySupplierID(ctx, r.dbtx, supplierID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shadow supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shadow supplier by supplier id", err)
	}

	return converter.ShadowSnapshotFromRow(row), nil
}
