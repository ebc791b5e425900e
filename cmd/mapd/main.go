package main

import (
	"context"
	"log/slog"
	"os"

	"kuttyport/config"
	"kuttyport/internal/delivery"
	"kuttyport/internal/delivery/http"
	"kuttyport/internal/delivery/http/middleware"
	"kuttyport/internal/delivery/http/router/handler"
	"kuttyport/internal/domain/repository"
	"kuttyport/internal/domain/service"
	"kuttyport/internal/infra/auth"
	logs "kuttyport/internal/infra/log"
	"kuttyport/internal/infra/metrics"
	"kuttyport/internal/infra/persistence/memory"
	"kuttyport/internal/infra/persistence/postgres"
	"kuttyport/internal/infra/pubsub"
	"kuttyport/internal/infra/qrcode"
	"kuttyport/internal/infra/tiles"
	"kuttyport/internal/mapview"
	"kuttyport/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newMetricsCollector,
		),
		pubsub.Module,
	)
}

// newMetricsCollector registers the map metrics with the default registry so
// /metrics also exposes the Go runtime collectors.
func newMetricsCollector() (*metrics.Collector, error) {
	return metrics.NewCollector(prometheus.DefaultRegisterer)
}

func injectRepo() fx.Option {
	return fx.Provide(
		newSnapshotRepository,
	)
}

type snapshotRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newSnapshotRepository selects the snapshot store configured under storage.driver.
func newSnapshotRepository(params snapshotRepositoryParams) (repository.SnapshotRepository, error) {
	switch driver := params.Config.Storage.Driver; driver {
	case config.StorageDriverMemory:
		params.Logger.Info("Using in-memory snapshot storage")

		return memory.NewSnapshotRepository(), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle:  params.Lifecycle,
			Config:     params.Config,
			Logger:     params.Logger,
			Registerer: prometheus.DefaultRegisterer,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL snapshot storage")

		return postgres.NewSnapshotRepository(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver %q", driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			tiles.NewPMTilesService,
			newQRCodeService,
			newRenderer,
			func(collector *metrics.Collector) service.MapMetrics { return collector },
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newRenderer builds the map renderer from the map section.
func newRenderer(cfg *config.Config, logger *slog.Logger) *mapview.Renderer {
	return mapview.NewRenderer(mapview.NewOptions(cfg.Map), logger.With(slog.String("component", "mapview")))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMapHandler,
			handler.NewAdminHandler,
			handler.NewTileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
