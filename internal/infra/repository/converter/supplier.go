package converter

import (
	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/domain/supplier"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func CoordsFromPg(lat, lon pgtype.Float8) *geo.Coordinates {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return &geo.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
}

func SupplierSnapshotFromRow(row sqlc.Supplier) *shared.SupplierSnapshot {
	return &shared.SupplierSnapshot{
		ID:                row.ID,
		CompanyName:       row.CompanyName,
		ContactEmail:      pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone:      pgconv.StringPtrFromPgtype(row.ContactPhone),
		Tier:              supplier.Tier(row.Tier),
		Categories:        row.Categories,
		Certifications:    row.Certifications,
		Location:          CoordsFromPg(row.Latitude, row.Longitude),
		VerificationScore: row.VerificationScore,
		Verified:          row.Verified,
	}
}

func CandidateSnapshotFromRow(row sqlc.FindCandidateSuppliersRow) shared.CandidateSnapshot {
	c := shared.CandidateSnapshot{
		SupplierSnapshot: shared.SupplierSnapshot{
			ID:                row.ID,
			CompanyName:       row.CompanyName,
			ContactEmail:      pgconv.StringPtrFromPgtype(row.ContactEmail),
			ContactPhone:      pgconv.StringPtrFromPgtype(row.ContactPhone),
			Tier:              supplier.Tier(row.Tier),
			Categories:        row.Categories,
			Certifications:    row.Certifications,
			Location:          CoordsFromPg(row.Latitude, row.Longitude),
			VerificationScore: row.VerificationScore,
			Verified:          row.Verified,
		},
	}
	if row.ShadowOptOutStatus.Valid {
		s := shadow.OptOutStatus(row.ShadowOptOutStatus.String)
		c.ShadowOptOutStatus = &s
	}
	if row.ShadowClaimedStatus.Valid {
		s := shadow.ClaimStatus(row.ShadowClaimedStatus.String)
		c.ShadowClaimedStatus = &s
	}
	return c
}

func SubscriptionSnapshotFromRow(row sqlc.SupplierSubscription) *shared.SubscriptionSnapshot {
	return &shared.SubscriptionSnapshot{
		SupplierID:             row.SupplierID,
		TierCode:               supplier.Tier(row.TierCode),
		WaveNumber:             row.WaveNumber,
		VisibilityDelayMinutes: row.VisibilityDelayMinutes,
		RFQMonthlyQuota:        pgconv.Int32PtrFromPgtype(row.RfqMonthlyQuota),
		RFQsUsedThisMonth:      row.RfqsUsedThisMonth,
		OutboundMonthlyQuota:   pgconv.Int32PtrFromPgtype(row.OutboundMonthlyQuota),
		OutboundUsedThisMonth:  row.OutboundUsedThisMonth,
		Features:               row.Features,
		Active:                 row.Active,
		UsageResetAt:           pgconv.TimePtrFromPgtype(row.UsageResetAt),
	}
}

func ResponseStatsSnapshotFromRow(row sqlc.SupplierResponseStat) shared.ResponseStatsSnapshot {
	avg, _ := pgconv.Float64PtrFromPgtype(row.AvgResponseMinutes)
	return shared.ResponseStatsSnapshot{
		SupplierID:         row.SupplierID,
		ReceivedCount:      row.ReceivedCount,
		RespondedCount:     row.RespondedCount,
		ResponseRate:       row.ResponseRate,
		AvgResponseMinutes: avg,
	}
}
