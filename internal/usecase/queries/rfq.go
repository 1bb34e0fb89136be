package queries

import (
	"context"

	"greenrfq/internal/infra"
	"greenrfq/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRFQNotFound = errs.New("rfq not found")
	ErrRFQAccess   = errs.New("rfq access denied")
)

type RFQQueries interface {
	GetByID(ctx context.Context, buyerID uuid.UUID, id uuid.UUID) (*RFQView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*RFQListItem, error)
}

type RFQViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RFQView, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*RFQListItem, error)
	FindResponses(ctx context.Context, rfqID uuid.UUID) ([]*ResponseView, error)
}

type rfqQueriesImpl struct {
	repo RFQViewRepo
}

func NewRFQQueries(repo RFQViewRepo) RFQQueries {
	return &rfqQueriesImpl{repo: repo}
}

func (q *rfqQueriesImpl) GetByID(ctx context.Context, buyerID uuid.UUID, id uuid.UUID) (*RFQView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRFQNotFound
		}
		return nil, err
	}
	if view.BuyerID != buyerID {
		return nil, ErrRFQAccess
	}

	responses, err := q.repo.FindResponses(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Responses = make([]ResponseView, len(responses))
	for i, r := range responses {
		view.Responses[i] = *r
	}
	return view, nil
}

func (q *rfqQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*RFQListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	// #nosec G115 -- limit is clamped to a small positive page size
	return q.repo.FindByBuyer(ctx, buyerID, int32(limit))
}
