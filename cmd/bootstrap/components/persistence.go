package components

import (
	"greenrfq/internal/infra/readstore"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/infra/uow"
	"greenrfq/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// Write side goes through the unit of work; repositories are
		// created lazily inside each transaction.
		uow.NewPostgresUoW,
		// Read side queries the pool directly.
		func(q *sqlc.Queries, db sqlc.DBTX) queries.RFQViewRepo {
			return readstore.NewRFQReadStore(q, db)
		},
		func(q *sqlc.Queries, db sqlc.DBTX) queries.QueueViewRepo {
			return readstore.NewQueueReadStore(q, db)
		},
		func(q *sqlc.Queries, db sqlc.DBTX) queries.ShadowViewRepo {
			return readstore.NewShadowReadStore(q, db)
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
