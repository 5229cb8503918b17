package main

import (
	"context"
	"log/slog"
	"os"

	"coshare/config"
	"coshare/internal/delivery"
	"coshare/internal/delivery/api"
	"coshare/internal/delivery/api/router/handler"
	"coshare/internal/domain/service"
	logs "coshare/internal/infra/log"
	"coshare/internal/infra/persistence"
	"coshare/internal/infra/pubsub"
	"coshare/internal/infra/qrcode"
	"coshare/internal/usecase"
	"coshare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			loadCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewCatalogSnapshotRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewQueryService,
			impl.NewValuationService,
			impl.NewSyndicateService,
			impl.NewSchedulingService,
			impl.NewReservationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAssetHandler,
			handler.NewValuationHandler,
			handler.NewSyndicateHandler,
			handler.NewSchedulingHandler,
			handler.NewReservationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadCatalog restores the persisted catalog before any delivery starts serving
func loadCatalog(lc fx.Lifecycle, catalog usecase.CatalogUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			result, err := catalog.Initialize(ctx)
			if err != nil {
				return err
			}

			logger.Info("Catalog loaded",
				slog.String("source", string(result.Source)),
				slog.Int("asset_count", result.AssetCount),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
