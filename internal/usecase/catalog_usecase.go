// Package usecase declares the application operations exposed to the deliveries.
package usecase

import (
	"context"

	"coshare/internal/domain/entity"
)

// LoadSource tells where the catalog came from at startup.
type LoadSource string

const (
	// LoadSourceSnapshot means the persisted catalog was loaded.
	LoadSourceSnapshot LoadSource = "snapshot"
	// LoadSourceSeed means nothing was persisted yet and the seed was used.
	LoadSourceSeed LoadSource = "seed"
	// LoadSourceSeedAfterCorruption means the persisted catalog was unreadable and was replaced by the seed.
	LoadSourceSeedAfterCorruption LoadSource = "seed_after_corruption"
)

// LoadResult describes the outcome of Initialize.
type LoadResult struct {
	Source     LoadSource `json:"source"`
	AssetCount int        `json:"asset_count"`
	Reason     string     `json:"reason,omitempty"` // Why the snapshot was discarded, if it was
}

// CatalogUsecase is the authoritative collection of assets for the running process.
type CatalogUsecase interface {
	// Initialize loads the persisted catalog or falls back to the seed. It never fails on bad data.
	Initialize(ctx context.Context) (*LoadResult, error)

	// Add derives a new asset, prepends it and persists the whole collection before returning
	Add(ctx context.Context, input entity.NewAssetInput) (*entity.Asset, error)

	// GetByID returns the asset with the exact id or ErrAssetNotFound
	GetByID(ctx context.Context, id string) (*entity.Asset, error)

	// ListPublic returns public assets in collection order
	ListPublic(ctx context.Context) []*entity.Asset

	// ListByOwner returns the owner's assets in collection order
	ListByOwner(ctx context.Context, ownerID string) []*entity.Asset
}
