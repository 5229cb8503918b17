package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// SyndicateTargetShares is the number of shares a syndicate must fill to close.
	SyndicateTargetShares = 4

	syndicateIDLength = 6
)

// SyndicateFeeReduction is the fee discount every member receives once the syndicate fills.
//
//nolint:gochecknoglobals
var SyndicateFeeReduction = decimal.RequireFromString("0.05")

// Syndicate is a group of buyers jointly purchasing shares of one asset.
type Syndicate struct {
	ID           string          `json:"id"`           // Short uppercase code shared with partners.
	AssetID      string          `json:"assetId"`      // Asset being purchased.
	AssetName    string          `json:"assetName"`    // Asset name at creation time.
	InitiatorID  string          `json:"initiatorId"`  // User who opened the syndicate.
	Link         string          `json:"link"`         // Shareable invite link.
	TargetShares int             `json:"targetShares"` // Shares needed to unlock the reduction.
	FilledShares int             `json:"filledShares"` // Shares committed so far, the initiator counts as one.
	FeeReduction decimal.Decimal `json:"feeReduction"` // Fee discount once filled, as a fraction.
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewSyndicateID returns a short uppercase base36 code.
func NewSyndicateID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return strings.ToUpper(raw[:syndicateIDLength])
}

// SyndicateLink builds the invite link for a syndicate id under baseURL.
func SyndicateLink(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/syn/" + id
}

// PartnersNeeded is the number of additional members required to fill the syndicate.
func (s *Syndicate) PartnersNeeded() int {
	needed := s.TargetShares - s.FilledShares
	if needed < 0 {
		return 0
	}

	return needed
}

// IsFilled reports whether the fee reduction is unlocked.
func (s *Syndicate) IsFilled() bool {
	return s.FilledShares >= s.TargetShares
}

// Status renders the fill progress, e.g. "1/4 filled".
func (s *Syndicate) Status() string {
	return fmt.Sprintf("%d/%d filled", s.FilledShares, s.TargetShares)
}
