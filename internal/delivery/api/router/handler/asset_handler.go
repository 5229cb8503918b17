package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"coshare/internal/delivery/api/response"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/money"
	"coshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	CatalogUC   usecase.CatalogUsecase
	QueryUC     usecase.QueryUsecase
	ValuationUC usecase.ValuationUsecase
	Logger      *slog.Logger
}

// AssetHandler serves the marketplace and portfolio endpoints
type AssetHandler struct {
	catalogUC   usecase.CatalogUsecase
	queryUC     usecase.QueryUsecase
	valuationUC usecase.ValuationUsecase
	logger      *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		catalogUC:   params.CatalogUC,
		queryUC:     params.QueryUC,
		valuationUC: params.ValuationUC,
		logger:      params.Logger,
	}
}

// SpecRequest is one row of the listing form's specification sheet
type SpecRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

// CreateAssetRequest represents the listing form
type CreateAssetRequest struct {
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Location     string          `json:"location"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"imageUrl" validate:"omitempty,url"`
	Gallery      []string        `json:"gallery" validate:"omitempty,dive,url"`
	PanoramaURL  string          `json:"panoramaUrl" validate:"omitempty,url"`
	Specs        []SpecRequest   `json:"specs" validate:"dive"`
	IsGoldenVisa bool            `json:"isGoldenVisa"`
	Visibility   string          `json:"visibility" validate:"omitempty,oneof=public private"`
}

// AssetResponse is an asset with its derived display fields
type AssetResponse struct {
	*entity.Asset

	Images             []string             `json:"images"`
	DisplayDescription string               `json:"displayDescription"`
	SharesRemaining    int                  `json:"sharesRemaining"`
	Currency           money.CurrencyCode   `json:"currency"`
	DisplaySharePrice  string               `json:"displaySharePrice"`
	DisplayTotalValue  string               `json:"displayTotalValue"`
	Fees               *entity.FeeBreakdown `json:"fees,omitempty"`
}

// ListAssets handles browsing public assets by category
func (h *AssetHandler) ListAssets(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		category = entity.CategoryAll
	}

	assets := h.queryUC.ByCategory(c.Request().Context(), category)

	return response.Success(c, http.StatusOK, h.toResponses(assets, currency))
}

// FeaturedAssets handles the home page showcase
func (h *AssetHandler) FeaturedAssets(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	assets := h.queryUC.Featured(c.Request().Context())

	return response.Success(c, http.StatusOK, h.toResponses(assets, currency))
}

// GetAsset handles the asset detail page
func (h *AssetHandler) GetAsset(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.visibleAsset(c, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := h.toResponse(asset, currency)
	fees := asset.Fees()
	resp.Fees = &fees

	return response.Success(c, http.StatusOK, resp)
}

// SimilarAssets handles the "you may also like" strip of the detail page
func (h *AssetHandler) SimilarAssets(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.visibleAsset(c, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	similar, err := h.queryUC.SimilarAssets(c.Request().Context(), asset.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.toResponses(similar, currency))
}

// CreateAsset handles listing a new asset owned by the current user
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var req CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visibility := entity.Visibility(req.Visibility)
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}

	specs := make([]entity.Spec, len(req.Specs))
	for idx, spec := range req.Specs {
		specs[idx] = entity.Spec{Label: spec.Label, Value: spec.Value}
	}

	asset, err := h.catalogUC.Add(c.Request().Context(), entity.NewAssetInput{
		Name:         req.Name,
		Category:     entity.Category(req.Category),
		Location:     req.Location,
		TotalValue:   req.TotalValue,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Gallery:      req.Gallery,
		PanoramaURL:  req.PanoramaURL,
		Specs:        specs,
		IsGoldenVisa: req.IsGoldenVisa,
		Visibility:   visibility,
		OwnerID:      deliverycontext.GetUserID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, h.toResponse(asset, money.ReferenceCurrency))
}

// Portfolio handles listing the current user's own assets, private ones included
func (h *AssetHandler) Portfolio(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	assets := h.catalogUC.ListByOwner(c.Request().Context(), deliverycontext.GetUserID(c))

	return response.Success(c, http.StatusOK, h.toResponses(assets, currency))
}

// visibleAsset hides private assets from everyone but their owner
func (h *AssetHandler) visibleAsset(c echo.Context, id string) (*entity.Asset, error) {
	asset, err := h.catalogUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if !asset.VisibleTo(deliverycontext.GetUserID(c)) {
		return nil, domainerrors.ErrAssetNotFound.WithDetails(id)
	}

	return asset, nil
}

func (h *AssetHandler) toResponse(asset *entity.Asset, currency money.CurrencyCode) *AssetResponse {
	return &AssetResponse{
		Asset:              asset,
		Images:             asset.Images(),
		DisplayDescription: asset.DisplayDescription(),
		SharesRemaining:    asset.SharesRemaining(),
		Currency:           currency,
		DisplaySharePrice:  h.valuationUC.Price(asset.SharePrice, currency).Formatted,
		DisplayTotalValue:  h.valuationUC.Price(asset.TotalValue, currency).Formatted,
	}
}

func (h *AssetHandler) toResponses(assets []*entity.Asset, currency money.CurrencyCode) []*AssetResponse {
	result := make([]*AssetResponse, len(assets))
	for idx, asset := range assets {
		result[idx] = h.toResponse(asset, currency)
	}

	return result
}

// parseCurrency reads the optional currency query parameter, USD when absent
func parseCurrency(c echo.Context) (money.CurrencyCode, error) {
	raw := c.QueryParam("currency")
	currency, err := money.ParseCurrency(raw)
	if err != nil {
		return "", domainerrors.ErrUnknownCurrency.WithDetails(raw)
	}

	return currency, nil
}
