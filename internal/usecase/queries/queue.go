package queries

import (
	"context"

	"greenrfq/internal/infra"

	"github.com/google/uuid"
)

type QueueQueries interface {
	StatusByRFQ(ctx context.Context, buyerID uuid.UUID, rfqID uuid.UUID) (*QueueStatusView, error)
	InboxForSupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]*VisibleRFQItem, error)
}

type QueueViewRepo interface {
	FindStatusCounts(ctx context.Context, rfqID uuid.UUID) ([]WaveStatusCount, error)
	FindEntriesByRFQ(ctx context.Context, rfqID uuid.UUID) ([]*QueueEntryView, error)
	FindVisibleForSupplier(ctx context.Context, supplierID uuid.UUID, limit int32) ([]*VisibleRFQItem, error)
}

type queueQueriesImpl struct {
	repo QueueViewRepo
	rfqs RFQViewRepo
}

func NewQueueQueries(repo QueueViewRepo, rfqs RFQViewRepo) QueueQueries {
	return &queueQueriesImpl{repo: repo, rfqs: rfqs}
}

func (q *queueQueriesImpl) StatusByRFQ(ctx context.Context, buyerID uuid.UUID, rfqID uuid.UUID) (*QueueStatusView, error) {
	rfqView, err := q.rfqs.FindByID(ctx, rfqID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRFQNotFound
		}
		return nil, err
	}
	if rfqView.BuyerID != buyerID {
		return nil, ErrRFQAccess
	}

	waves, err := q.repo.FindStatusCounts(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	entries, err := q.repo.FindEntriesByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}

	view := &QueueStatusView{
		RFQID:   rfqID,
		Waves:   waves,
		Entries: make([]QueueEntryView, len(entries)),
	}
	for i, e := range entries {
		view.Entries[i] = *e
	}
	return view, nil
}

func (q *queueQueriesImpl) InboxForSupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]*VisibleRFQItem, error) {
	if limit <= 0 {
		limit = 50
	}
	// #nosec G115 -- limit is clamped to a small positive page size
	return q.repo.FindVisibleForSupplier(ctx, supplierID, int32(limit))
}
