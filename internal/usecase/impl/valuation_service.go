package impl

import (
	"context"

	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/money"
	"coshare/internal/usecase"

	"github.com/shopspring/decimal"
)

type valuationService struct {
	catalog usecase.CatalogUsecase
}

// NewValuationService creates the pricing service
func NewValuationService(catalog usecase.CatalogUsecase) usecase.ValuationUsecase {
	return &valuationService{catalog: catalog}
}

// Quote builds the pricing sheet of an asset. Private assets are only quoted to their owner.
func (s *valuationService) Quote(ctx context.Context, assetID, viewerID string, currency money.CurrencyCode) (*usecase.Quote, error) {
	if !currency.IsValid() {
		return nil, domainerrors.ErrUnknownCurrency.WithDetails(string(currency))
	}

	asset, err := s.catalog.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if !asset.VisibleTo(viewerID) {
		return nil, domainerrors.ErrAssetNotFound.WithDetails(assetID)
	}

	fees := asset.Fees()

	return &usecase.Quote{
		AssetID:          asset.ID,
		Currency:         currency,
		SharePrice:       s.Price(asset.SharePrice, currency),
		TotalValue:       s.Price(asset.TotalValue, currency),
		SPVFormation:     s.Price(fees.SPVFormation, currency),
		SourcingFee:      s.Price(fees.SourcingFee, currency),
		TotalOffering:    s.Price(fees.TotalOffering, currency),
		Deposit:          s.Price(entity.ReservationDeposit, currency),
		FundedPercentage: asset.FundedPercentage,
		SharesRemaining:  asset.SharesRemaining(),
		IsGoldenVisa:     asset.IsGoldenVisa,
	}, nil
}

// Currencies lists the display currencies in order
func (s *valuationService) Currencies() []money.Currency {
	return money.Currencies()
}

// Price converts and formats one reference amount. The currency must be valid.
func (s *valuationService) Price(amountUSD decimal.Decimal, currency money.CurrencyCode) usecase.Amount {
	return usecase.Amount{
		Value:     money.Convert(amountUSD, currency),
		Formatted: money.Format(amountUSD, currency),
	}
}
