package entity

import "github.com/shopspring/decimal"

//nolint:gochecknoglobals
var (
	// SPVFormationRate covers SPV formation and legal work.
	SPVFormationRate = decimal.RequireFromString("0.015")
	// SourcingFeeRate is charged for sourcing the asset.
	SourcingFeeRate = decimal.RequireFromString("0.025")
)

// FeeBreakdown itemizes the one-off costs on top of an asset's total value.
type FeeBreakdown struct {
	SPVFormation  decimal.Decimal `json:"spvFormation"`  // SPV Formation & Legal, 1.5% of total value.
	SourcingFee   decimal.Decimal `json:"sourcingFee"`   // Sourcing fee, 2.5% of total value.
	TotalOffering decimal.Decimal `json:"totalOffering"` // Total value plus both fees.
}

// Fees computes the fee breakdown for the asset's total value.
func (a *Asset) Fees() FeeBreakdown {
	spv := a.TotalValue.Mul(SPVFormationRate)
	sourcing := a.TotalValue.Mul(SourcingFeeRate)

	return FeeBreakdown{
		SPVFormation:  spv,
		SourcingFee:   sourcing,
		TotalOffering: a.TotalValue.Add(spv).Add(sourcing),
	}
}
