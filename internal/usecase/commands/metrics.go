package commands

import (
	"context"
	"log/slog"

	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

type MetricsCommands interface {
	Recompute(ctx context.Context, supplierID uuid.UUID) (*shared.ResponseStatsSnapshot, error)
	RecomputeBatch(ctx context.Context, supplierIDs []uuid.UUID) error
}

type metricsUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMetricsUseCase(uow shared.UnitOfWork) MetricsCommands {
	return &metricsUseCaseImpl{uow: uow}
}

// Recompute derives a supplier's response metrics from the queue and
// stores them. Reading and writing in one transaction makes the refresh
// idempotent; recomputing twice yields the same row.
func (uc *metricsUseCaseImpl) Recompute(ctx context.Context, supplierID uuid.UUID) (*shared.ResponseStatsSnapshot, error) {
	var stats shared.ResponseStatsSnapshot

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		metrics, err := tx.Reads().QueueMetrics(ctx, supplierID)
		if err != nil {
			return err
		}

		stats = buildStats(supplierID, metrics)
		return tx.Stats().Upsert(ctx, tx.DB(), stats)
	})
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (uc *metricsUseCaseImpl) RecomputeBatch(ctx context.Context, supplierIDs []uuid.UUID) error {
	var failed int
	for _, id := range supplierIDs {
		if _, err := uc.Recompute(ctx, id); err != nil {
			failed++
			slog.Warn("metrics recompute failed",
				"supplier_id", id,
				"error", err.Error())
		}
	}

	slog.Info("metrics recompute batch finished",
		"total", len(supplierIDs),
		"failed", failed)
	return nil
}

func buildStats(supplierID uuid.UUID, m *shared.QueueMetricsSnapshot) shared.ResponseStatsSnapshot {
	stats := shared.ResponseStatsSnapshot{
		SupplierID:         supplierID,
		ReceivedCount:      int32(m.ReceivedCount),  // #nosec G115 -- per-supplier counts stay well within int32
		RespondedCount:     int32(m.RespondedCount), // #nosec G115
		AvgResponseMinutes: m.AvgResponseMinutes,
	}
	if m.ReceivedCount > 0 {
		stats.ResponseRate = float64(m.RespondedCount) / float64(m.ReceivedCount)
	}
	return stats
}
