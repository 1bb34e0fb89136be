package repository

import (
	"context"

	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SupplierWriteQueries interface {
	CreateSupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSupplierParams) (uuid.UUID, error)
	UpdateSupplierTier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSupplierTierParams) (int64, error)
}

type SupplierRepository struct {
	queries SupplierWriteQueries
	db      sqlc.DBTX
}

func NewSupplierRepository(queries SupplierWriteQueries, db sqlc.DBTX) *SupplierRepository {
	return &SupplierRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateSupplierParams) (uuid.UUID, error) {
	resultID, err := r.queries.CreateSupplier(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create supplier", err)
	}

	return resultID, nil
}

func (r *SupplierRepository) UpdateTier(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, tier string) error {
	affected, err := r.queries.UpdateSupplierTier(ctx, tx, sqlc.UpdateSupplierTierParams{
		ID:   id,
		Tier: tier,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update supplier tier", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound)
	}

	return nil
}
