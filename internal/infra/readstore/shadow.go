package readstore

import (
	"context"

	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShadowViewQueries interface {
	GetShadowByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ShadowSupplier, error)
	ListClaimAuditBySupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClaimAuditBySupplierParams) ([]sqlc.ShadowClaimAuditLog, error)
	ListShadowProducts(ctx context.Context, db sqlc.DBTX, shadowSupplierID uuid.UUID) ([]sqlc.ShadowProduct, error)
}

type ShadowReadStore struct {
	queries ShadowViewQueries
	db      sqlc.DBTX
}

func NewShadowReadStore(queries ShadowViewQueries, db sqlc.DBTX) *ShadowReadStore {
	return &ShadowReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ShadowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClaimStatusView, error) {
	row, err := r.queries.GetShadowByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shadow supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shadow supplier by ID", err)
	}

	return &queries.ClaimStatusView{
		ShadowID:      row.ID,
		CompanyName:   row.CompanyName,
		ClaimedStatus: row.ClaimedStatus,
		OptOutStatus:  row.OptOutStatus,
		LockedUntil:   pgconv.TimePtrFromPgtype(row.LockedUntil),
	}, nil
}

func (r *ShadowReadStore) FindAuditBySupplier(ctx context.Context, shadowID uuid.UUID, limit int32) ([]*queries.ClaimAuditEntry, error) {
	params := sqlc.ListClaimAuditBySupplierParams{
		ShadowSupplierID: shadowID,
		Limit:            limit,
	}

	rows, err := r.queries.ListClaimAuditBySupplier(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claim audit entries", err)
	}

	result := make([]*queries.ClaimAuditEntry, len(rows))
	for i, row := range rows {
		result[i] = &queries.ClaimAuditEntry{
			Action:    row.Action,
			Actor:     pgconv.StringPtrFromPgtype(row.Actor),
			Success:   row.Success,
			Reason:    pgconv.StringPtrFromPgtype(row.Reason),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ShadowReadStore) FindProducts(ctx context.Context, shadowID uuid.UUID) ([]*queries.ShadowProductView, error) {
	rows, err := r.queries.ListShadowProducts(ctx, r.db, shadowID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shadow products", err)
	}

	result := make([]*queries.ShadowProductView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ShadowProductView{
			ID:          row.ID,
			Name:        row.Name,
			Category:    pgconv.StringPtrFromPgtype(row.Category),
			Description: pgconv.StringPtrFromPgtype(row.Description),
			Visibility:  row.Visibility,
		}
	}
	return result, nil
}
