// Package persistence selects the catalog snapshot backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"coshare/config"
	"coshare/internal/domain/constants"
	"coshare/internal/domain/repository"
	"coshare/internal/errors"
	"coshare/internal/infra/persistence/model"
	"coshare/internal/infra/persistence/postgres"
	"coshare/internal/infra/storage/blob"

	"go.uber.org/fx"
)

// Params holds dependencies for the snapshot repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogSnapshotRepository builds the backend named by catalog.driver.
func NewCatalogSnapshotRepository(params Params) (repository.CatalogSnapshotRepository, error) {
	cfg := params.Config.Catalog
	if cfg == nil {
		return nil, errors.New("catalog configuration is required")
	}

	switch cfg.Driver {
	case constants.CatalogDriverBlob:
		bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Using blob catalog storage",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("key", cfg.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})

		return blob.NewSnapshotRepository(bucket, cfg.Key, params.Logger), nil

	case constants.CatalogDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres catalog driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		if cfg.AutoMigrate {
			if err := db.WithContext(params.Ctx).AutoMigrate(&model.CatalogSnapshotModel{}); err != nil {
				return nil, errors.Wrap(err, "failed to migrate catalog snapshot table")
			}
		}

		params.Logger.Info("Using postgres catalog storage", slog.String("key", cfg.Key))

		return postgres.NewCatalogSnapshotRepository(db, cfg.Key), nil

	default:
		return nil, errors.Errorf("unknown catalog driver: %s", cfg.Driver)
	}
}
