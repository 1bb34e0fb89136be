package repository

import (
	"context"

	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"
)

type StatsWriteQueries interface {
	UpsertResponseStats(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertResponseStatsParams) error
}

type StatsRepository struct {
	queries StatsWriteQueries
	db      sqlc.DBTX
}

func NewStatsRepository(queries StatsWriteQueries, db sqlc.DBTX) *StatsRepository {
	return &StatsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StatsRepository) Upsert(ctx context.Context, tx sqlc.DBTX, stats shared.ResponseStatsSnapshot) error {
	params := sqlc.UpsertResponseStatsParams{
		SupplierID:         stats.SupplierID,
		ReceivedCount:      stats.ReceivedCount,
		RespondedCount:     stats.RespondedCount,
		ResponseRate:       stats.ResponseRate,
		AvgResponseMinutes: pgconv.Float64PtrToPgtype(stats.AvgResponseMinutes),
	}

	if err := r.queries.UpsertResponseStats(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert response stats", err)
	}

	return nil
}
