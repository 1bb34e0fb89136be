package components

import (
	"log/slog"

	"greenrfq/internal/infra/geocode"
	"greenrfq/internal/infra/notify"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.DistributionConfig { return cfg.Distribution },
	func(cfg config.Config) config.ClaimConfig { return cfg.Claim },
	NewGeocoder,
	fx.Annotate(
		notify.NewLogTransport,
		fx.As(new(commands.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEntitlementUseCase,
		commands.NewDistributionUseCase,
		commands.NewDispatchUseCase,
		commands.NewRFQUseCase,
		commands.NewClaimUseCase,
		commands.NewIngestionUseCase,
		commands.NewMetricsUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRFQQueries,
		queries.NewQueueQueries,
		queries.NewShadowQueries,
	),
)

func NewGeocoder(cfg config.Config, logger *slog.Logger) commands.Geocoder {
	if cfg.Distribution.GeocoderBaseURL == "" {
		logger.Info("geocoding disabled, project addresses will not be resolved")
		return geocode.NewNoopGeocoder()
	}
	return geocode.NewNominatimGeocoder(cfg.Distribution.GeocoderBaseURL)
}
