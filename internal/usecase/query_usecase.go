package usecase

import (
	"context"

	"coshare/internal/domain/entity"
)

// QueryUsecase provides read-only projections over the catalog.
type QueryUsecase interface {
	// SimilarAssets returns up to three other public assets, same category first
	SimilarAssets(ctx context.Context, assetID string) ([]*entity.Asset, error)

	// Featured returns the first public asset of each featured category
	Featured(ctx context.Context) []*entity.Asset

	// ByCategory filters public assets by category, "All" returns every public asset
	ByCategory(ctx context.Context, category string) []*entity.Asset
}
