package impl

import (
	"context"
	"testing"

	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	mockUsecase "coshare/internal/mocks/usecase"
	"coshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryServiceFixtures holds all test dependencies for query service tests.
type queryServiceFixtures struct {
	service usecase.QueryUsecase
	catalog *mockUsecase.MockCatalogUsecase
}

func createTestQueryService(t *testing.T) queryServiceFixtures {
	catalog := mockUsecase.NewMockCatalogUsecase(t)

	return queryServiceFixtures{
		service: NewQueryService(catalog),
		catalog: catalog,
	}
}

func TestQueryService_SimilarAssets(t *testing.T) {
	public := []*entity.Asset{
		publicAsset("re-1", entity.CategoryRealEstate),
		publicAsset("sc-1", entity.CategorySupercar),
		publicAsset("y-1", entity.CategoryYacht),
		publicAsset("sc-2", entity.CategorySupercar),
		publicAsset("sc-3", entity.CategorySupercar),
		publicAsset("sc-4", entity.CategorySupercar),
		publicAsset("j-1", entity.CategoryJet),
	}

	tests := []struct {
		name   string
		target *entity.Asset
		want   []string
	}{
		{
			name:   "enough in category",
			target: public[1],
			want:   []string{"sc-2", "sc-3", "sc-4"},
		},
		{
			name:   "no other in category pads in collection order",
			target: public[6],
			want:   []string{"re-1", "sc-1", "y-1"},
		},
		{
			name:   "private target still gets public suggestions",
			target: testAsset("mine", entity.CategoryYacht, entity.VisibilityPrivate, entity.DemoUserID),
			want:   []string{"y-1", "re-1", "sc-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQueryService(t)
			ctx := context.Background()

			fx.catalog.EXPECT().GetByID(ctx, tt.target.ID).Return(tt.target, nil)
			fx.catalog.EXPECT().ListPublic(ctx).Return(public)

			got, err := fx.service.SimilarAssets(ctx, tt.target.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryService_SimilarAssets_PadsWithOneCategoryMatch(t *testing.T) {
	fx := createTestQueryService(t)
	ctx := context.Background()

	public := []*entity.Asset{
		publicAsset("j-1", entity.CategoryJet),
		publicAsset("re-1", entity.CategoryRealEstate),
		publicAsset("y-1", entity.CategoryYacht),
		publicAsset("j-2", entity.CategoryJet),
		publicAsset("sb-1", entity.CategorySuperbike),
	}

	fx.catalog.EXPECT().GetByID(ctx, "j-1").Return(public[0], nil)
	fx.catalog.EXPECT().ListPublic(ctx).Return(public)

	got, err := fx.service.SimilarAssets(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"j-2", "re-1", "y-1"}, ids(got))
	assert.NotContains(t, ids(got), "j-1")
}

func TestQueryService_SimilarAssets_SmallCatalog(t *testing.T) {
	fx := createTestQueryService(t)
	ctx := context.Background()

	public := []*entity.Asset{publicAsset("j-1", entity.CategoryJet), publicAsset("re-1", entity.CategoryRealEstate)}
	fx.catalog.EXPECT().GetByID(ctx, "j-1").Return(public[0], nil)
	fx.catalog.EXPECT().ListPublic(ctx).Return(public)

	got, err := fx.service.SimilarAssets(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"re-1"}, ids(got))
}

func TestQueryService_SimilarAssets_UnknownAsset(t *testing.T) {
	fx := createTestQueryService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().GetByID(ctx, "nope").Return(nil, domainerrors.ErrAssetNotFound)

	_, err := fx.service.SimilarAssets(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestQueryService_Featured(t *testing.T) {
	tests := []struct {
		name   string
		public []*entity.Asset
		want   []string
	}{
		{
			name: "one per category in fixed order",
			public: []*entity.Asset{
				publicAsset("y-1", entity.CategoryYacht),
				publicAsset("sc-1", entity.CategorySupercar),
				publicAsset("re-1", entity.CategoryRealEstate),
				publicAsset("re-2", entity.CategoryRealEstate),
			},
			want: []string{"re-1", "sc-1", "y-1"},
		},
		{
			name:   "missing categories are skipped",
			public: []*entity.Asset{publicAsset("j-1", entity.CategoryJet), publicAsset("y-1", entity.CategoryYacht)},
			want:   []string{"y-1"},
		},
		{
			name:   "empty catalog",
			public: []*entity.Asset{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQueryService(t)
			ctx := context.Background()

			fx.catalog.EXPECT().ListPublic(ctx).Return(tt.public)

			assert.Equal(t, tt.want, ids(fx.service.Featured(ctx)))
		})
	}
}

func TestQueryService_ByCategory(t *testing.T) {
	public := []*entity.Asset{
		publicAsset("re-1", entity.CategoryRealEstate),
		publicAsset("off-1", entity.CategoryOffroad),
		publicAsset("re-2", entity.CategoryRealEstate),
	}

	tests := []struct {
		category string
		want     []string
	}{
		{category: "All", want: []string{"re-1", "off-1", "re-2"}},
		{category: "Real Estate", want: []string{"re-1", "re-2"}},
		{category: "Desert 4x4", want: []string{"off-1"}},
		{category: "Art", want: []string{}},
		{category: "real estate", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			fx := createTestQueryService(t)
			ctx := context.Background()

			fx.catalog.EXPECT().ListPublic(ctx).Return(public)

			assert.Equal(t, tt.want, ids(fx.service.ByCategory(ctx, tt.category)))
		})
	}
}
