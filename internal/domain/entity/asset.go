// Package entity contains the core business objects of the marketplace.
package entity

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// SharesPerAsset is the number of equal fractions every asset is divided into.
	SharesPerAsset = 8

	// HouseOwnerID marks catalog-owned inventory.
	HouseOwnerID = "system"

	// DemoUserID is the user every unauthenticated request acts as.
	DemoUserID = "user-1"

	// FallbackImageURL is used when a listing is created without an image.
	FallbackImageURL = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?auto=format&fit=crop&q=80"

	// DefaultDescription is shown for assets without a description.
	DefaultDescription = "A masterpiece of design and engineering. This asset represents the pinnacle of its category, " +
		"offering unparallelled performance and luxury."

	idSuffixLength   = 9
	galleryFallbacks = 3
)

// ErrInvalidAsset is wrapped by every validation failure of an asset or its creation input.
var ErrInvalidAsset = errors.New("invalid asset")

// Spec is one label/value row of an asset's specification sheet.
type Spec struct {
	Label string `json:"label"` // Row label, e.g. "Year".
	Value string `json:"value"` // Row value, e.g. "1963".
}

// Asset is a single fractionalizable item. All money is kept in the reference currency (USD).
type Asset struct {
	ID               string          `json:"id"`                     // Stable for seed data, generated for user listings.
	Name             string          `json:"name"`                   // Display name.
	Category         Category        `json:"category"`               // One of Categories() or a forward-compatible value.
	Location         string          `json:"location"`               // Free-form location.
	TotalValue       decimal.Decimal `json:"totalValue"`             // Valuation of the whole asset.
	SharePrice       decimal.Decimal `json:"sharePrice"`             // Price of one of the SharesPerAsset fractions, fixed at creation.
	FundedPercentage decimal.Decimal `json:"fundedPercentage"`       // Portion of shares considered sold, 0..100.
	ImageURL         string          `json:"imageUrl"`               // Main image.
	Gallery          []string        `json:"gallery,omitempty"`      // Ordered images, main image first.
	PanoramaURL      string          `json:"panoramaUrl,omitempty"`  // Optional wide image for the 360 view.
	Description      string          `json:"description,omitempty"`  // Optional marketing text.
	Specs            []Spec          `json:"specs"`                  // Display-ordered spec rows, not deduplicated.
	IsGoldenVisa     bool            `json:"isGoldenVisa,omitempty"` // Informational residency flag.
	Status           string          `json:"status,omitempty"`       // Optional free-form status label.
	OwnerID          string          `json:"ownerId"`                // HouseOwnerID or a user id.
	Visibility       Visibility      `json:"visibility"`             // public or private.
}

// NewAssetInput is what a listing form submits.
type NewAssetInput struct {
	Name         string
	Category     Category
	Location     string
	TotalValue   decimal.Decimal
	Description  string
	ImageURL     string
	Gallery      []string
	PanoramaURL  string
	Specs        []Spec
	IsGoldenVisa bool
	Visibility   Visibility
	OwnerID      string
}

// NewAsset derives a complete asset from the creation input.
func NewAsset(input NewAssetInput, id string) (*Asset, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Wrap(ErrInvalidAsset, "id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(ErrInvalidAsset, "name is required")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, errors.Wrap(ErrInvalidAsset, "owner is required")
	}
	if !input.Visibility.IsValid() {
		return nil, errors.Wrapf(ErrInvalidAsset, "visibility %q", input.Visibility)
	}
	if input.TotalValue.IsNegative() {
		return nil, errors.Wrap(ErrInvalidAsset, "total value must not be negative")
	}

	image := strings.TrimSpace(input.ImageURL)
	if image == "" {
		image = FallbackImageURL
	}

	specs := make([]Spec, len(input.Specs))
	copy(specs, input.Specs)

	var gallery []string
	if len(input.Gallery) > 0 {
		gallery = slices.Clone(input.Gallery)
		if !slices.Contains(gallery, image) {
			gallery = append([]string{image}, gallery...)
		}
	}

	asset := &Asset{
		ID:               id,
		Name:             strings.TrimSpace(input.Name),
		Category:         input.Category,
		Location:         strings.TrimSpace(input.Location),
		TotalValue:       input.TotalValue,
		SharePrice:       input.TotalValue.Div(decimal.NewFromInt(SharesPerAsset)),
		FundedPercentage: decimal.Zero,
		ImageURL:         image,
		Gallery:          gallery,
		PanoramaURL:      input.PanoramaURL,
		Description:      input.Description,
		Specs:            specs,
		IsGoldenVisa:     input.IsGoldenVisa,
		OwnerID:          input.OwnerID,
		Visibility:       input.Visibility,
	}

	return asset, nil
}

// NewAssetID returns an id of the form ua-<unix millis>-<9 base36 chars>.
func NewAssetID(now time.Time) string {
	random := uuid.New()
	n := binary.BigEndian.Uint64(random[:8])
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) < idSuffixLength {
		suffix = strings.Repeat("0", idSuffixLength-len(suffix)) + suffix
	}

	return fmt.Sprintf("ua-%d-%s", now.UnixMilli(), suffix[:idSuffixLength])
}

// Validate checks the invariants every stored asset must satisfy.
func (a *Asset) Validate() error {
	hundred := decimal.NewFromInt(100)

	switch {
	case strings.TrimSpace(a.ID) == "":
		return errors.Wrap(ErrInvalidAsset, "id is required")
	case a.TotalValue.IsNegative():
		return errors.Wrapf(ErrInvalidAsset, "%s: total value is negative", a.ID)
	case a.SharePrice.IsNegative():
		return errors.Wrapf(ErrInvalidAsset, "%s: share price is negative", a.ID)
	case a.FundedPercentage.IsNegative() || a.FundedPercentage.GreaterThan(hundred):
		return errors.Wrapf(ErrInvalidAsset, "%s: funded percentage %s out of range", a.ID, a.FundedPercentage)
	case !a.Visibility.IsValid():
		return errors.Wrapf(ErrInvalidAsset, "%s: visibility %q", a.ID, a.Visibility)
	case strings.TrimSpace(a.OwnerID) == "":
		return errors.Wrapf(ErrInvalidAsset, "%s: owner is required", a.ID)
	case len(a.Gallery) > 0 && !slices.Contains(a.Gallery, a.ImageURL):
		return errors.Wrapf(ErrInvalidAsset, "%s: gallery does not contain the main image", a.ID)
	}

	return nil
}

// IsPublic reports whether the asset is listed in the marketplace.
func (a *Asset) IsPublic() bool {
	return a.Visibility == VisibilityPublic
}

// VisibleTo reports whether userID may see the asset.
func (a *Asset) VisibleTo(userID string) bool {
	return a.IsPublic() || a.OwnerID == userID
}

// SharesRemaining is the number of the SharesPerAsset fractions not yet sold.
func (a *Asset) SharesRemaining() int {
	sold := a.FundedPercentage.
		Mul(decimal.NewFromInt(SharesPerAsset)).
		Div(decimal.NewFromInt(100)).
		Ceil()

	remaining := SharesPerAsset - int(sold.IntPart())
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Images returns the gallery, or the main image three times when no gallery is set.
func (a *Asset) Images() []string {
	if len(a.Gallery) > 0 {
		return slices.Clone(a.Gallery)
	}

	images := make([]string, galleryFallbacks)
	for i := range images {
		images[i] = a.ImageURL
	}

	return images
}

// DisplayDescription returns the description or the generic marketing text.
func (a *Asset) DisplayDescription() string {
	if strings.TrimSpace(a.Description) == "" {
		return DefaultDescription
	}

	return a.Description
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Gallery = slices.Clone(a.Gallery)
	cloned.Specs = slices.Clone(a.Specs)
	if cloned.Specs == nil {
		cloned.Specs = []Spec{}
	}

	return &cloned
}
