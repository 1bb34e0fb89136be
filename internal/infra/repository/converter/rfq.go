package converter

import (
	"greenrfq/internal/domain/rfq"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func RFQToCreateParams(r *rfq.RFQ) sqlc.CreateRFQParams {
	params := sqlc.CreateRFQParams{
		BuyerID:                r.BuyerID(),
		Title:                  r.Title(),
		Materials:              r.Materials(),
		CertificationsRequired: r.CertificationsRequired(),
		BudgetMaxCents:         pgconv.Int64PtrToPgtype(r.BudgetMaxCents()),
		Deadline:               pgconv.TimePtrToPgtype(r.Deadline()),
	}

	if desc := r.Description(); desc != "" {
		params.Description = pgtype.Text{String: desc, Valid: true}
	}
	if cat := r.Category(); cat != "" {
		params.Category = pgtype.Text{String: cat, Valid: true}
	}
	if addr := r.ProjectAddress(); addr != "" {
		params.ProjectAddress = pgtype.Text{String: addr, Valid: true}
	}
	if loc := r.Location(); loc != nil {
		params.Latitude = pgtype.Float8{Float64: loc.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: loc.Longitude, Valid: true}
	}

	return params
}

func RFQSnapshotFromRow(row sqlc.Rfq) *shared.RFQSnapshot {
	return &shared.RFQSnapshot{
		ID:                     row.ID,
		BuyerID:                row.BuyerID,
		Title:                  row.Title,
		Description:            pgconv.StringPtrFromPgtype(row.Description),
		Category:               pgconv.StringPtrFromPgtype(row.Category),
		Materials:              row.Materials,
		CertificationsRequired: row.CertificationsRequired,
		Location:               CoordsFromPg(row.Latitude, row.Longitude),
		ProjectAddress:         pgconv.StringPtrFromPgtype(row.ProjectAddress),
		BudgetMaxCents:         pgconv.Int64PtrFromPgtype(row.BudgetMaxCents),
		Deadline:               pgconv.TimePtrFromPgtype(row.Deadline),
		Status:                 rfq.Status(row.Status),
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
