package repository

import (
	"context"

	"greenrfq/internal/domain/rfq"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository/converter"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RFQWriteQueries interface {
	CreateRFQ(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRFQParams) (uuid.UUID, error)
	UpdateRFQStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRFQStatusParams) (int64, error)
	CreateRFQResponse(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRFQResponseParams) (uuid.UUID, error)
}

type RFQRepository struct {
	queries RFQWriteQueries
	db      sqlc.DBTX
}

func NewRFQRepository(queries RFQWriteQueries, db sqlc.DBTX) *RFQRepository {
	return &RFQRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RFQRepository) Create(ctx context.Context, tx sqlc.DBTX, req *rfq.RFQ) (uuid.UUID, error) {
	params := converter.RFQToCreateParams(req)

	resultID, err := r.queries.CreateRFQ(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rfq", err)
	}

	return resultID, nil
}

func (r *RFQRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status rfq.Status) error {
	affected, err := r.queries.UpdateRFQStatus(ctx, tx, sqlc.UpdateRFQStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update rfq status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("rfq not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RFQRepository) CreateResponse(ctx context.Context, tx sqlc.DBTX, rfqID, supplierID uuid.UUID, priceCents *int64, leadTimeDays *int32, message string) (uuid.UUID, error) {
	params := sqlc.CreateRFQResponseParams{
		RfqID:        rfqID,
		SupplierID:   supplierID,
		PriceCents:   pgconv.Int64PtrToPgtype(priceCents),
		LeadTimeDays: pgconv.Int32PtrToPgtype(leadTimeDays),
		Message:      message,
	}

	resultID, err := r.queries.CreateRFQResponse(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rfq response", err)
	}

	return resultID, nil
}
