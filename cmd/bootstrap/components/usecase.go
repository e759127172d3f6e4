package components

import (
	"tastebite/internal/domain/pricing"
	"tastebite/internal/pkg/clock"
	"tastebite/internal/usecase"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewBestOfferCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewBasketCommands,
		commands.NewCheckoutCommands,
		commands.NewOfferCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewBasketQueries,
		queries.NewCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
