package impl

import (
	"context"

	"coshare/internal/domain/entity"
	"coshare/internal/usecase"
)

// similarAssetsLimit is the size of the "you may also like" strip.
const similarAssetsLimit = 3

// featuredCategories are shown on the landing page, in this order.
//
//nolint:gochecknoglobals
var featuredCategories = []entity.Category{
	entity.CategoryRealEstate,
	entity.CategorySupercar,
	entity.CategoryYacht,
}

type queryService struct {
	catalog usecase.CatalogUsecase
}

// NewQueryService creates the read-only projections over the catalog
func NewQueryService(catalog usecase.CatalogUsecase) usecase.QueryUsecase {
	return &queryService{catalog: catalog}
}

// SimilarAssets returns other public assets of the same category, padded with
// the rest of the public collection. Order is collection order, never random.
func (s *queryService) SimilarAssets(ctx context.Context, assetID string) ([]*entity.Asset, error) {
	target, err := s.catalog.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	public := s.catalog.ListPublic(ctx)
	result := make([]*entity.Asset, 0, similarAssetsLimit)

	for _, sameCategory := range []bool{true, false} {
		for _, asset := range public {
			if len(result) == similarAssetsLimit {
				return result, nil
			}
			if asset.ID == target.ID || (asset.Category == target.Category) != sameCategory {
				continue
			}
			result = append(result, asset)
		}
	}

	return result, nil
}

// Featured picks the first public asset of each featured category, skipping empty ones
func (s *queryService) Featured(ctx context.Context) []*entity.Asset {
	public := s.catalog.ListPublic(ctx)
	result := make([]*entity.Asset, 0, len(featuredCategories))

	for _, category := range featuredCategories {
		for _, asset := range public {
			if asset.Category == category {
				result = append(result, asset)

				break
			}
		}
	}

	return result
}

// ByCategory returns public assets of the category, or all of them for "All"
func (s *queryService) ByCategory(ctx context.Context, category string) []*entity.Asset {
	public := s.catalog.ListPublic(ctx)
	if category == entity.CategoryAll {
		return public
	}

	result := make([]*entity.Asset, 0, len(public))
	for _, asset := range public {
		if string(asset.Category) == category {
			result = append(result, asset)
		}
	}

	return result
}
