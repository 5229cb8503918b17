package impl

import (
	"io"
	"log/slog"
	"time"

	"coshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func testAsset(id string, category entity.Category, visibility entity.Visibility, ownerID string) *entity.Asset {
	return &entity.Asset{
		ID:               id,
		Name:             "Asset " + id,
		Category:         category,
		Location:         "Dubai, UAE",
		TotalValue:       decimal.NewFromInt(800000),
		SharePrice:       decimal.NewFromInt(100000),
		FundedPercentage: decimal.NewFromInt(50),
		ImageURL:         entity.FallbackImageURL,
		Specs:            []entity.Spec{},
		OwnerID:          ownerID,
		Visibility:       visibility,
	}
}

func publicAsset(id string, category entity.Category) *entity.Asset {
	return testAsset(id, category, entity.VisibilityPublic, entity.HouseOwnerID)
}

func ids(assets []*entity.Asset) []string {
	result := make([]string, len(assets))
	for idx, asset := range assets {
		result[idx] = asset.ID
	}

	return result
}
