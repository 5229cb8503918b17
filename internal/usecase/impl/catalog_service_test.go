package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/repository"
	"coshare/internal/domain/service"
	mockRepo "coshare/internal/mocks/repository"
	mockService "coshare/internal/mocks/service"
	"coshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   *catalogService
	repo      *mockRepo.MockCatalogSnapshotRepository
	publisher *mockService.MockEventPublisher
}

func createTestCatalogService(t *testing.T, seed ...*entity.Asset) catalogServiceFixtures {
	repo := mockRepo.NewMockCatalogSnapshotRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCatalogService(CatalogServiceParams{
		Repo:      repo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}).(*catalogService)
	svc.now = fixedClock
	if len(seed) > 0 {
		svc.seed = func() []*entity.Asset {
			cloned := make([]*entity.Asset, len(seed))
			for idx, asset := range seed {
				cloned[idx] = asset.Clone()
			}

			return cloned
		}
	}

	return catalogServiceFixtures{
		service:   svc,
		repo:      repo,
		publisher: publisher,
	}
}

// loaded replaces the collection without touching storage.
func (f catalogServiceFixtures) loaded(assets ...*entity.Asset) catalogServiceFixtures {
	f.service.assets = assets

	return f
}

func testListing(name string, total int64) entity.NewAssetInput {
	return entity.NewAssetInput{
		Name:       name,
		Category:   entity.CategoryJet,
		Location:   "Farnborough, UK",
		TotalValue: decimal.NewFromInt(total),
		Specs:      []entity.Spec{{Label: "Year", Value: "2021"}},
		Visibility: entity.VisibilityPublic,
		OwnerID:    entity.DemoUserID,
	}
}

func TestCatalogService_Initialize_NoSnapshotLoadsSeedAndStoresIt(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Load(ctx).Return(nil, repository.ErrSnapshotNotFound)
	fx.repo.EXPECT().Save(ctx, mock.AnythingOfType("[]uint8")).Return(nil)

	result, err := fx.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LoadSourceSeed, result.Source)
	assert.Equal(t, 21, result.AssetCount)

	villa, err := fx.service.GetByID(ctx, "re-1")
	require.NoError(t, err)
	assert.Equal(t, "Palm Jumeirah Signature Villa", villa.Name)
	assert.True(t, villa.SharePrice.Equal(decimal.NewFromInt(1562500)))
	assert.True(t, villa.TotalValue.Equal(decimal.NewFromInt(12500000)))
}

func TestCatalogService_Initialize_LoadsSnapshot(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	stored := []*entity.Asset{
		publicAsset("ua-2", entity.CategoryJet),
		testAsset("ua-1", entity.CategoryWatch, entity.VisibilityPrivate, "user-2"),
	}
	data, err := encodeCatalog(stored)
	require.NoError(t, err)

	fx.repo.EXPECT().Load(ctx).Return(data, nil)

	result, err := fx.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LoadSourceSnapshot, result.Source)
	assert.Equal(t, 2, result.AssetCount)
	assert.Equal(t, []string{"ua-2"}, ids(fx.service.ListPublic(ctx)))
	assert.Equal(t, []string{"ua-1"}, ids(fx.service.ListByOwner(ctx, "user-2")))
}

func TestCatalogService_Initialize_CorruptSnapshotReseeds(t *testing.T) {
	duplicate, err := encodeCatalog([]*entity.Asset{publicAsset("a", entity.CategoryJet), publicAsset("a", entity.CategoryJet)})
	require.NoError(t, err)

	overfunded := publicAsset("a", entity.CategoryJet)
	overfunded.FundedPercentage = decimal.NewFromInt(140)
	invalid, err := encodeCatalog([]*entity.Asset{overfunded})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "not json", data: []byte("{not json")},
		{name: "empty", data: []byte("  ")},
		{name: "future version", data: []byte(`{"version":2,"assets":[]}`)},
		{name: "duplicate ids", data: duplicate},
		{name: "invalid asset", data: invalid},
		{name: "null record", data: []byte(`{"version":1,"assets":[null]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t, publicAsset("seed-1", entity.CategoryYacht))
			ctx := context.Background()

			fx.repo.EXPECT().Load(ctx).Return(tt.data, nil)
			fx.repo.EXPECT().Save(ctx, mock.AnythingOfType("[]uint8")).Return(nil)

			result, err := fx.service.Initialize(ctx)
			require.NoError(t, err)
			assert.Equal(t, usecase.LoadSourceSeedAfterCorruption, result.Source)
			assert.NotEmpty(t, result.Reason)
			assert.Equal(t, []string{"seed-1"}, ids(fx.service.ListPublic(ctx)))
		})
	}
}

func TestCatalogService_Initialize_ReadErrorServesSeedWithoutOverwriting(t *testing.T) {
	fx := createTestCatalogService(t, publicAsset("seed-1", entity.CategoryYacht))
	ctx := context.Background()

	fx.repo.EXPECT().Load(ctx).Return(nil, errors.New("bucket unavailable"))

	result, err := fx.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LoadSourceSeed, result.Source)
	assert.Contains(t, result.Reason, "bucket unavailable")
	fx.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogService_Initialize_SeedSaveFailureIsNotFatal(t *testing.T) {
	fx := createTestCatalogService(t, publicAsset("seed-1", entity.CategoryYacht))
	ctx := context.Background()

	fx.repo.EXPECT().Load(ctx).Return(nil, repository.ErrSnapshotNotFound)
	fx.repo.EXPECT().Save(ctx, mock.Anything).Return(errors.New("read-only"))

	result, err := fx.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AssetCount)
}

func TestCatalogService_Initialize_LegacyArray(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	legacy := `[{"id":"ua-1","name":"Old Listing","category":"Art","location":"Paris","totalValue":800000,` +
		`"sharePrice":100000,"fundedPercentage":0,"imageUrl":"https://img/a.jpg","ownerId":"user-1","visibility":"public"}]`
	fx.repo.EXPECT().Load(ctx).Return([]byte(legacy), nil)

	result, err := fx.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LoadSourceSnapshot, result.Source)

	asset, err := fx.service.GetByID(ctx, "ua-1")
	require.NoError(t, err)
	assert.NotNil(t, asset.Specs)
	assert.True(t, asset.SharePrice.Equal(decimal.NewFromInt(100000)))
}

func TestCatalogService_Initialize_CanceledContext(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.Initialize(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCatalogService_Add_PrependsPersistsAndPublishes(t *testing.T) {
	fx := createTestCatalogService(t).loaded(
		testAsset(entity.DemoUserID+"-old", entity.CategoryWatch, entity.VisibilityPublic, entity.DemoUserID),
	)
	ctx := context.Background()

	var saved []byte
	fx.repo.EXPECT().Save(ctx, mock.AnythingOfType("[]uint8")).
		Run(func(_ context.Context, data []byte) { saved = data }).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == service.EventAssetListed && event.OwnerID == entity.DemoUserID &&
				event.Subject == "Test Jet listed at $8,000,000"
		})).
		Return(nil)

	asset, err := fx.service.Add(ctx, testListing("Test Jet", 8000000))
	require.NoError(t, err)
	assert.Regexp(t, `^ua-\d+-[0-9a-z]{9}$`, asset.ID)
	assert.True(t, asset.SharePrice.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, asset.FundedPercentage.IsZero())

	owned := fx.service.ListByOwner(ctx, entity.DemoUserID)
	require.Len(t, owned, 2)
	assert.Equal(t, asset.ID, owned[0].ID)

	var snapshot catalogSnapshot
	require.NoError(t, json.Unmarshal(saved, &snapshot))
	assert.Equal(t, catalogSnapshotVersion, snapshot.Version)
	require.Len(t, snapshot.Assets, 2)
	assert.Equal(t, asset.ID, snapshot.Assets[0].ID)
}

func TestCatalogService_Add_SurvivesRestart(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	var saved []byte
	fx.repo.EXPECT().Save(ctx, mock.Anything).Run(func(_ context.Context, data []byte) { saved = data }).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	asset, err := fx.service.Add(ctx, testListing("Test Jet", 8000000))
	require.NoError(t, err)

	restarted := createTestCatalogService(t)
	restarted.repo.EXPECT().Load(ctx).Return(saved, nil)

	result, err := restarted.service.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LoadSourceSnapshot, result.Source)

	reloaded, err := restarted.service.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.Name, reloaded.Name)
	assert.Equal(t, asset.OwnerID, reloaded.OwnerID)
	assert.Equal(t, asset.Specs, reloaded.Specs)
	assert.True(t, asset.SharePrice.Equal(reloaded.SharePrice))
	assert.True(t, asset.TotalValue.Equal(reloaded.TotalValue))
}

func TestCatalogService_Add_PersistFailureRollsBack(t *testing.T) {
	fx := createTestCatalogService(t).loaded(publicAsset("re-1", entity.CategoryRealEstate))
	ctx := context.Background()

	fx.repo.EXPECT().Save(ctx, mock.Anything).Return(errors.New("disk full"))

	asset, err := fx.service.Add(ctx, testListing("Test Jet", 8000000))
	require.Error(t, err)
	assert.Nil(t, asset)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogPersistFailed)
	assert.Equal(t, []string{"re-1"}, ids(fx.service.ListPublic(ctx)))
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCatalogService_Add_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("worker down"))

	asset, err := fx.service.Add(ctx, testListing("Test Jet", 8000000))
	require.NoError(t, err)
	assert.NotNil(t, asset)
}

func TestCatalogService_Add_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input func() entity.NewAssetInput
	}{
		{name: "empty name", input: func() entity.NewAssetInput { return testListing(" ", 1) }},
		{name: "negative value", input: func() entity.NewAssetInput { return testListing("Jet", -1) }},
		{name: "unknown visibility", input: func() entity.NewAssetInput {
			in := testListing("Jet", 1)
			in.Visibility = "friends"

			return in
		}},
		{name: "no owner", input: func() entity.NewAssetInput {
			in := testListing("Jet", 1)
			in.OwnerID = ""

			return in
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.Add(context.Background(), tt.input())
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAsset)
		})
	}
}

func TestCatalogService_Add_RegeneratesCollidingID(t *testing.T) {
	fx := createTestCatalogService(t).loaded(publicAsset("ua-taken", entity.CategoryJet))
	ctx := context.Background()

	generated := []string{"ua-taken", "ua-free"}
	fx.service.newID = func(time.Time) string {
		id := generated[0]
		generated = generated[1:]

		return id
	}

	fx.repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	asset, err := fx.service.Add(ctx, testListing("Test Jet", 8000000))
	require.NoError(t, err)
	assert.Equal(t, "ua-free", asset.ID)
}

func TestCatalogService_Add_GivesUpOnPersistentCollision(t *testing.T) {
	fx := createTestCatalogService(t).loaded(publicAsset("ua-taken", entity.CategoryJet))
	fx.service.newID = func(time.Time) string { return "ua-taken" }

	_, err := fx.service.Add(context.Background(), testListing("Test Jet", 8000000))
	require.ErrorIs(t, err, errAssetIDExhausted)
}

func TestCatalogService_GetByID_Missing(t *testing.T) {
	fx := createTestCatalogService(t).loaded(publicAsset("re-1", entity.CategoryRealEstate))

	asset, err := fx.service.GetByID(context.Background(), "nope")
	assert.Nil(t, asset)
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestCatalogService_ReturnsCopies(t *testing.T) {
	fx := createTestCatalogService(t).loaded(publicAsset("re-1", entity.CategoryRealEstate))
	ctx := context.Background()

	asset, err := fx.service.GetByID(ctx, "re-1")
	require.NoError(t, err)
	asset.Name = "mutated"

	listed := fx.service.ListPublic(ctx)
	listed[0].Specs = append(listed[0].Specs, entity.Spec{Label: "x", Value: "y"})

	again, err := fx.service.GetByID(ctx, "re-1")
	require.NoError(t, err)
	assert.Equal(t, "Asset re-1", again.Name)
	assert.Empty(t, again.Specs)
}

func TestCatalogService_Lists(t *testing.T) {
	fx := createTestCatalogService(t).loaded(
		publicAsset("a", entity.CategoryJet),
		testAsset("b", entity.CategoryJet, entity.VisibilityPrivate, entity.DemoUserID),
		testAsset("c", entity.CategoryYacht, entity.VisibilityPublic, entity.DemoUserID),
	)
	ctx := context.Background()

	assert.Equal(t, []string{"a", "c"}, ids(fx.service.ListPublic(ctx)))
	assert.Equal(t, ids(fx.service.ListPublic(ctx)), ids(fx.service.ListPublic(ctx)))
	assert.Equal(t, []string{"b", "c"}, ids(fx.service.ListByOwner(ctx, entity.DemoUserID)))

	none := fx.service.ListByOwner(ctx, "nobody")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
