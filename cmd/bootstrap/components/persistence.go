package components

import (
	"tastebite/internal/infra/db"
	"tastebite/internal/infra/qr"
	"tastebite/internal/infra/readstore"
	"tastebite/internal/infra/uow"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Readstores for the query side
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBasketReadStore,
			fx.As(new(queries.BasketReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Redemption artifact generator
		fx.Annotate(
			qr.NewFileGenerator,
			fx.As(new(commands.ArtifactGenerator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
