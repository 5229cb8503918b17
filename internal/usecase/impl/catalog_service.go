// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/money"
	"coshare/internal/domain/repository"
	"coshare/internal/domain/service"
	"coshare/internal/usecase"
	"coshare/internal/usecase/seeder"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxIDAttempts bounds regeneration of colliding asset ids.
const maxIDAttempts = 5

var errAssetIDExhausted = errors.New("could not generate a unique asset id")

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	mu     sync.RWMutex
	assets []*entity.Asset

	repo      repository.CatalogSnapshotRepository
	publisher service.EventPublisher
	logger    *slog.Logger

	seed  func() []*entity.Asset
	now   func() time.Time
	newID func(time.Time) string
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Repo      repository.CatalogSnapshotRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCatalogService creates an empty catalog. Initialize must run before it serves reads.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		repo:      params.Repo,
		publisher: params.Publisher,
		logger:    params.Logger,
		seed:      seeder.CatalogSeed,
		now:       time.Now,
		newID:     entity.NewAssetID,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Initialize loads the persisted catalog, or the seed when there is none or it is unusable.
func (s *catalogService) Initialize(ctx context.Context) (*usecase.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	logger := s.log(ctx)

	data, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
		logger.Info("No stored catalog, loading seed")

		return s.reseed(ctx, usecase.LoadSourceSeed, "", true), nil

	case err != nil:
		// Leave storage untouched, the stored catalog may still be good.
		logger.Error("Failed to read stored catalog, serving seed", slog.Any("error", err))

		return s.reseed(ctx, usecase.LoadSourceSeed, err.Error(), false), nil
	}

	assets, err := decodeCatalog(data)
	if err != nil {
		logger.Warn("Stored catalog is unusable, replacing it with seed",
			slog.Int("size", len(data)),
			slog.Any("error", err),
		)

		return s.reseed(ctx, usecase.LoadSourceSeedAfterCorruption, err.Error(), true), nil
	}

	s.mu.Lock()
	s.assets = assets
	s.mu.Unlock()

	logger.Info("Catalog loaded", slog.Int("asset_count", len(assets)))

	return &usecase.LoadResult{Source: usecase.LoadSourceSnapshot, AssetCount: len(assets)}, nil
}

func (s *catalogService) reseed(ctx context.Context, source usecase.LoadSource, reason string, persist bool) *usecase.LoadResult {
	assets := s.seed()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = assets
	if persist {
		if err := s.persist(ctx, assets); err != nil {
			s.log(ctx).Warn("Failed to store seed catalog", slog.Any("error", err))
		}
	}

	return &usecase.LoadResult{Source: source, AssetCount: len(assets), Reason: reason}
}

// persist writes the whole collection. Callers hold the write lock.
func (s *catalogService) persist(ctx context.Context, assets []*entity.Asset) error {
	data, err := encodeCatalog(assets)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, data)
}

// Add derives the asset, prepends it and persists synchronously. Nothing changes if the save fails.
func (s *catalogService) Add(ctx context.Context, input entity.NewAssetInput) (*entity.Asset, error) {
	s.mu.Lock()

	id, err := s.uniqueID()
	if err != nil {
		s.mu.Unlock()

		return nil, errors.WithStack(err)
	}

	asset, err := entity.NewAsset(input, id)
	if err != nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrInvalidAsset.WithDetails(err.Error())
	}

	next := make([]*entity.Asset, 0, len(s.assets)+1)
	next = append(next, asset)
	next = append(next, s.assets...)

	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.log(ctx).Error("Failed to persist catalog", slog.String("asset_id", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCatalogPersistFailed, err.Error())
	}

	s.assets = next
	s.mu.Unlock()

	s.log(ctx).Info("Asset listed",
		slog.String("asset_id", asset.ID),
		slog.String("owner_id", asset.OwnerID),
		slog.String("visibility", string(asset.Visibility)),
	)

	s.publishListed(ctx, asset)

	return asset.Clone(), nil
}

// uniqueID returns an id not used by the collection. Callers hold the write lock.
func (s *catalogService) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := s.newID(s.now())
		if s.indexOf(id) < 0 {
			return id, nil
		}
	}

	return "", errAssetIDExhausted
}

func (s *catalogService) indexOf(id string) int {
	for idx, asset := range s.assets {
		if asset.ID == id {
			return idx
		}
	}

	return -1
}

func (s *catalogService) publishListed(ctx context.Context, asset *entity.Asset) {
	event := newCatalogEvent(ctx, service.EventAssetListed, s.now())
	event.AssetID = asset.ID
	event.OwnerID = asset.OwnerID
	event.Subject = asset.Name + " listed at " + money.Format(asset.TotalValue, money.ReferenceCurrency)
	event.Payload = map[string]any{
		"category":   string(asset.Category),
		"visibility": string(asset.Visibility),
		"totalValue": asset.TotalValue.String(),
	}

	publishBestEffort(ctx, s.publisher, s.log(ctx), event)
}

// GetByID returns a copy of the asset with the exact id.
func (s *catalogService) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domainerrors.ErrAssetNotFound.WithDetails(id)
	}

	return s.assets[idx].Clone(), nil
}

// ListPublic returns copies of public assets in collection order.
func (s *catalogService) ListPublic(ctx context.Context) []*entity.Asset {
	return s.filter(func(asset *entity.Asset) bool {
		return asset.IsPublic()
	})
}

// ListByOwner returns copies of the owner's assets in collection order.
func (s *catalogService) ListByOwner(ctx context.Context, ownerID string) []*entity.Asset {
	return s.filter(func(asset *entity.Asset) bool {
		return asset.OwnerID == ownerID
	})
}

func (s *catalogService) filter(keep func(*entity.Asset) bool) []*entity.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		if keep(asset) {
			result = append(result, asset.Clone())
		}
	}

	return result
}
