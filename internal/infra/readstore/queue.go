package readstore

import (
	"context"
	"encoding/json"

	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/queries"

	"github.com/google/uuid"
)

type QueueViewQueries interface {
	GetQueueStatusCounts(ctx context.Context, db sqlc.DBTX, rfqID uuid.UUID) ([]sqlc.GetQueueStatusCountsRow, error)
	ListQueueEntriesByRFQ(ctx context.Context, db sqlc.DBTX, rfqID uuid.UUID) ([]sqlc.ListQueueEntriesByRFQRow, error)
	ListVisibleEntriesForSupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVisibleEntriesForSupplierParams) ([]sqlc.ListVisibleEntriesForSupplierRow, error)
}

type QueueReadStore struct {
	queries QueueViewQueries
	db      sqlc.DBTX
}

func NewQueueReadStore(queries QueueViewQueries, db sqlc.DBTX) *QueueReadStore {
	return &QueueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QueueReadStore) FindStatusCounts(ctx context.Context, rfqID uuid.UUID) ([]queries.WaveStatusCount, error) {
	rows, err := r.queries.GetQueueStatusCounts(ctx, r.db, rfqID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get queue status counts", err)
	}

	result := make([]queries.WaveStatusCount, len(rows))
	for i, row := range rows {
		result[i] = queries.WaveStatusCount{
			WaveNumber: row.WaveNumber,
			Status:     row.Status,
			Count:      row.EntryCount,
		}
	}
	return result, nil
}

func (r *QueueReadStore) FindEntriesByRFQ(ctx context.Context, rfqID uuid.UUID) ([]*queries.QueueEntryView, error) {
	rows, err := r.queries.ListQueueEntriesByRFQ(ctx, r.db, rfqID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queue entries", err)
	}

	result := make([]*queries.QueueEntryView, len(rows))
	for i, row := range rows {
		view, err := rowToQueueEntryView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToQueueEntryView(row sqlc.ListQueueEntriesByRFQRow) (*queries.QueueEntryView, error) {
	distance, err := pgconv.Float64PtrFromPgtype(row.DistanceKm)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert distance", err)
	}

	// Tier is snapshotted at distribution time so the buyer view stays
	// consistent even when the supplier claims its profile later.
	profile := supplier.Shape(supplier.Identity{
		ID:          row.SupplierID,
		DisplayName: row.CompanyName,
		Tier:        supplier.Tier(row.TierSnapshot),
	})

	view := &queries.QueueEntryView{
		SupplierID:    row.SupplierID,
		SupplierName:  profile.DisplayName,
		WaveNumber:    row.WaveNumber,
		VisibleAt:     pgconv.TimeFromPgtype(row.VisibleAt),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		Status:        row.Status,
		AccessLevel:   row.AccessLevel,
		MatchScore:    row.MatchScore,
		PriorityScore: row.PriorityScore,
		DistanceKm:    distance,
		WaveReason:    pgconv.StringPtrFromPgtype(row.WaveReason),
	}
	if len(row.ScoreBreakdown) > 0 {
		// A corrupt breakdown payload degrades to an empty breakdown
		// rather than failing the whole listing.
		_ = json.Unmarshal(row.ScoreBreakdown, &view.Breakdown)
	}
	return view, nil
}

func (r *QueueReadStore) FindVisibleForSupplier(ctx context.Context, supplierID uuid.UUID, limit int32) ([]*queries.VisibleRFQItem, error) {
	params := sqlc.ListVisibleEntriesForSupplierParams{
		SupplierID: supplierID,
		Limit:      limit,
	}

	rows, err := r.queries.ListVisibleEntriesForSupplier(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visible entries", err)
	}

	result := make([]*queries.VisibleRFQItem, len(rows))
	for i, row := range rows {
		result[i] = rowToVisibleRFQItem(row)
	}
	return result, nil
}

// rowToVisibleRFQItem withholds all request content from outreach-only
// entries; those carry nothing but the claim prompt.
func rowToVisibleRFQItem(row sqlc.ListVisibleEntriesForSupplierRow) *queries.VisibleRFQItem {
	item := &queries.VisibleRFQItem{
		RFQID:       row.RfqID,
		AccessLevel: row.AccessLevel,
		Status:      row.Status,
		VisibleAt:   pgconv.TimeFromPgtype(row.VisibleAt),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		MatchScore:  row.MatchScore,
	}
	if row.AccessLevel == string(supplier.AccessOutreachOnly) {
		item.ClaimPrompt = true
		return item
	}

	title := row.Title
	item.Title = &title
	item.Category = pgconv.StringPtrFromPgtype(row.Category)
	item.Materials = row.Materials
	item.CertificationsRequired = row.CertificationsRequired
	item.BudgetMaxCents = pgconv.Int64PtrFromPgtype(row.BudgetMaxCents)
	item.Deadline = pgconv.TimePtrFromPgtype(row.Deadline)
	return item
}
