package usecase

import (
	"context"

	"coshare/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Amount is a reference-currency value shown in a display currency.
type Amount struct {
	Value     decimal.Decimal `json:"value"`     // Converted and rounded
	Formatted string          `json:"formatted"` // e.g. "AED 3,670,000"
}

// Quote is the pricing sheet of one asset in one currency.
type Quote struct {
	AssetID          string             `json:"asset_id"`
	Currency         money.CurrencyCode `json:"currency"`
	SharePrice       Amount             `json:"share_price"`
	TotalValue       Amount             `json:"total_value"`
	SPVFormation     Amount             `json:"spv_formation"`
	SourcingFee      Amount             `json:"sourcing_fee"`
	TotalOffering    Amount             `json:"total_offering"`
	Deposit          Amount             `json:"deposit"`
	FundedPercentage decimal.Decimal    `json:"funded_percentage"`
	SharesRemaining  int                `json:"shares_remaining"`
	IsGoldenVisa     bool               `json:"is_golden_visa"`
}

// ValuationUsecase converts and formats asset financials.
type ValuationUsecase interface {
	// Quote prices an asset the viewer may see in the given currency
	Quote(ctx context.Context, assetID, viewerID string, currency money.CurrencyCode) (*Quote, error)

	// Currencies lists the supported display currencies
	Currencies() []money.Currency

	// Price converts a single reference amount
	Price(amountUSD decimal.Decimal, currency money.CurrencyCode) Amount
}
