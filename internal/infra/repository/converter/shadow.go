package converter

import (
	"greenrfq/internal/domain/shadow"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"
)

func ShadowSnapshotFromRow(row sqlc.ShadowSupplier) *shared.ShadowSnapshot {
	return &shared.ShadowSnapshot{
		ID:                 row.ID,
		SupplierID:         row.SupplierID,
		CompanyName:        row.CompanyName,
		Email:              pgconv.StringPtrFromPgtype(row.Email),
		Phone:              pgconv.StringPtrFromPgtype(row.Phone),
		Website:            pgconv.StringPtrFromPgtype(row.Website),
		Source:             pgconv.StringPtrFromPgtype(row.Source),
		ClaimedStatus:      shadow.ClaimStatus(row.ClaimedStatus),
		OptOutStatus:       shadow.OptOutStatus(row.OptOutStatus),
		ClaimAttempts:      row.ClaimAttempts,
		LockedUntil:        pgconv.TimePtrFromPgtype(row.LockedUntil),
		LastClaimAttemptAt: pgconv.TimePtrFromPgtype(row.LastClaimAttemptAt),
		LinkedSupplierID:   pgconv.UUIDPtrFromNull(row.LinkedSupplierID),
	}
}

func ClaimTokenSnapshotFromRow(row sqlc.ShadowClaimToken) *shared.ClaimTokenSnapshot {
	return &shared.ClaimTokenSnapshot{
		ID:                    row.ID,
		ShadowSupplierID:      row.ShadowSupplierID,
		Status:                shadow.TokenStatus(row.Status),
		ExpiresAt:             pgconv.TimeFromPgtype(row.ExpiresAt),
		VerificationCode:      pgconv.StringPtrFromPgtype(row.VerificationCode),
		VerificationExpiresAt: pgconv.TimePtrFromPgtype(row.VerificationExpiresAt),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
