package queries

import (
	"context"

	"greenrfq/internal/infra"
	"greenrfq/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrShadowNotFound = errs.New("shadow supplier not found")

type ShadowQueries interface {
	ClaimStatus(ctx context.Context, shadowID uuid.UUID) (*ClaimStatusView, error)
	AuditTrail(ctx context.Context, shadowID uuid.UUID, limit int) ([]*ClaimAuditEntry, error)
	Products(ctx context.Context, shadowID uuid.UUID) ([]*ShadowProductView, error)
}

type ShadowViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimStatusView, error)
	FindAuditBySupplier(ctx context.Context, shadowID uuid.UUID, limit int32) ([]*ClaimAuditEntry, error)
	FindProducts(ctx context.Context, shadowID uuid.UUID) ([]*ShadowProductView, error)
}

type shadowQueriesImpl struct {
	repo ShadowViewRepo
}

func NewShadowQueries(repo ShadowViewRepo) ShadowQueries {
	return &shadowQueriesImpl{repo: repo}
}

func (q *shadowQueriesImpl) ClaimStatus(ctx context.Context, shadowID uuid.UUID) (*ClaimStatusView, error) {
	view, err := q.repo.FindByID(ctx, shadowID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShadowNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *shadowQueriesImpl) AuditTrail(ctx context.Context, shadowID uuid.UUID, limit int) ([]*ClaimAuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	// #nosec G115 -- limit is clamped to a small positive page size
	return q.repo.FindAuditBySupplier(ctx, shadowID, int32(limit))
}

func (q *shadowQueriesImpl) Products(ctx context.Context, shadowID uuid.UUID) ([]*ShadowProductView, error) {
	return q.repo.FindProducts(ctx, shadowID)
}
