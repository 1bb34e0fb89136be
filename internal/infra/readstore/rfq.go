package readstore

import (
	"context"

	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/queries"

	"github.com/google/uuid"
)

type RFQViewQueries interface {
	GetRFQByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rfq, error)
	ListRFQsByBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRFQsByBuyerParams) ([]sqlc.Rfq, error)
	ListResponsesByRFQ(ctx context.Context, db sqlc.DBTX, rfqID uuid.UUID) ([]sqlc.ListResponsesByRFQRow, error)
}

type RFQReadStore struct {
	queries RFQViewQueries
	db      sqlc.DBTX
}

func NewRFQReadStore(queries RFQViewQueries, db sqlc.DBTX) *RFQReadStore {
	return &RFQReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RFQReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RFQView, error) {
	row, err := r.queries.GetRFQByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rfq not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rfq by ID", err)
	}

	return rowToRFQView(row), nil
}

func rowToRFQView(row sqlc.Rfq) *queries.RFQView {
	return &queries.RFQView{
		ID:                     row.ID,
		BuyerID:                row.BuyerID,
		Title:                  row.Title,
		Description:            pgconv.StringPtrFromPgtype(row.Description),
		Category:               pgconv.StringPtrFromPgtype(row.Category),
		Materials:              row.Materials,
		CertificationsRequired: row.CertificationsRequired,
		ProjectAddress:         pgconv.StringPtrFromPgtype(row.ProjectAddress),
		BudgetMaxCents:         pgconv.Int64PtrFromPgtype(row.BudgetMaxCents),
		Deadline:               pgconv.TimePtrFromPgtype(row.Deadline),
		Status:                 row.Status,
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func (r *RFQReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.RFQListItem, error) {
	params := sqlc.ListRFQsByBuyerParams{
		BuyerID: buyerID,
		Limit:   limit,
	}

	rows, err := r.queries.ListRFQsByBuyer(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rfqs by buyer", err)
	}

	result := make([]*queries.RFQListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.RFQListItem{
			ID:        row.ID,
			Title:     row.Title,
			Category:  pgconv.StringPtrFromPgtype(row.Category),
			Status:    row.Status,
			Deadline:  pgconv.TimePtrFromPgtype(row.Deadline),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *RFQReadStore) FindResponses(ctx context.Context, rfqID uuid.UUID) ([]*queries.ResponseView, error) {
	rows, err := r.queries.ListResponsesByRFQ(ctx, r.db, rfqID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rfq responses", err)
	}

	result := make([]*queries.ResponseView, len(rows))
	for i, row := range rows {
		result[i] = rowToResponseView(row)
	}
	return result, nil
}

// rowToResponseView shapes the supplier identity before it leaves the
// read side. Unclaimed suppliers appear under the anonymous label with
// contact channels withheld.
func rowToResponseView(row sqlc.ListResponsesByRFQRow) *queries.ResponseView {
	profile := supplier.Shape(supplier.Identity{
		ID:           row.SupplierID,
		DisplayName:  row.CompanyName,
		ContactEmail: pgconv.StringPtrFromPgtype(row.ContactEmail),
		Tier:         supplier.Tier(row.Tier),
		Verified:     row.Verified,
	})

	return &queries.ResponseView{
		ID:           row.ID,
		SupplierID:   row.SupplierID,
		SupplierName: profile.DisplayName,
		ContactEmail: profile.ContactEmail,
		Verified:     profile.Verified,
		PriceCents:   pgconv.Int64PtrFromPgtype(row.PriceCents),
		LeadTimeDays: pgconv.Int32PtrFromPgtype(row.LeadTimeDays),
		Message:      row.Message,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
