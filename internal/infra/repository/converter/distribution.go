package converter

import (
	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/domain/supplier"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"
)

func QueueUpsertToParams(entry shared.QueueUpsert) sqlc.UpsertQueueEntryParams {
	return sqlc.UpsertQueueEntryParams{
		RfqID:          entry.RFQID,
		SupplierID:     entry.SupplierID,
		WaveNumber:     entry.WaveNumber,
		VisibleAt:      pgconv.TimeToPgtype(entry.VisibleAt),
		ExpiresAt:      pgconv.TimeToPgtype(entry.ExpiresAt),
		AccessLevel:    entry.AccessLevel,
		MatchScore:     entry.MatchScore,
		PriorityScore:  entry.PriorityScore,
		ScoreBreakdown: entry.ScoreBreakdown,
		DistanceKm:     pgconv.Float64PtrToPgtype(entry.DistanceKm),
		TierSnapshot:   entry.TierSnapshot,
		WaveReason:     pgconv.StringToPgtype(entry.WaveReason),
	}
}

func QueueEntrySnapshotFromRow(row sqlc.DistributionQueue) *shared.QueueEntrySnapshot {
	distKm, _ := pgconv.Float64PtrFromPgtype(row.DistanceKm)
	return &shared.QueueEntrySnapshot{
		RFQID:          row.RfqID,
		SupplierID:     row.SupplierID,
		WaveNumber:     row.WaveNumber,
		VisibleAt:      pgconv.TimeFromPgtype(row.VisibleAt),
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		Status:         distribution.Status(row.Status),
		AccessLevel:    supplier.AccessLevel(row.AccessLevel),
		MatchScore:     row.MatchScore,
		PriorityScore:  row.PriorityScore,
		ScoreBreakdown: row.ScoreBreakdown,
		DistanceKm:     distKm,
		TierSnapshot:   supplier.Tier(row.TierSnapshot),
		WaveReason:     pgconv.StringPtrFromPgtype(row.WaveReason),
		NotifiedAt:     pgconv.TimePtrFromPgtype(row.NotifiedAt),
		ViewedAt:       pgconv.TimePtrFromPgtype(row.ViewedAt),
		RespondedAt:    pgconv.TimePtrFromPgtype(row.RespondedAt),
	}
}

func QueueMetricsFromRow(row sqlc.GetSupplierQueueMetricsRow) *shared.QueueMetricsSnapshot {
	avg, _ := pgconv.Float64PtrFromPgtype(row.AvgResponseMinutes)
	return &shared.QueueMetricsSnapshot{
		ReceivedCount:      row.ReceivedCount,
		RespondedCount:     row.RespondedCount,
		AvgResponseMinutes: avg,
	}
}
