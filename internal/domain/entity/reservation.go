package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationKind distinguishes allocation requests from waitlist sign-ups.
type ReservationKind string

const (
	// ReservationAllocation reserves a share of a specific asset.
	ReservationAllocation ReservationKind = "allocation"
	// ReservationWaitlist joins the off-market waitlist.
	ReservationWaitlist ReservationKind = "waitlist"

	// ReservationStatusReceived is set on every new reservation.
	ReservationStatusReceived = "received"
)

// ReservationDeposit is the refundable deposit quoted for an allocation.
//
//nolint:gochecknoglobals
var ReservationDeposit = decimal.NewFromInt(1000)

// Reservation is a captured lead. No money moves.
type Reservation struct {
	ID         string          `json:"id"`
	Kind       ReservationKind `json:"kind"`
	AssetID    string          `json:"assetId,omitempty"`   // Empty for waitlist leads.
	AssetName  string          `json:"assetName,omitempty"` // Asset name at reservation time.
	UserID     string          `json:"userId"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Accredited bool            `json:"accredited"` // Self-certified accredited investor.
	Deposit    decimal.Decimal `json:"deposit"`    // Reference currency.
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}
