package handler

import (
	"log/slog"
	"net/http"

	"coshare/internal/delivery/api/response"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	"coshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyndicateHandlerParams holds dependencies for SyndicateHandler, injected by Fx.
type SyndicateHandlerParams struct {
	fx.In

	SyndicateUC usecase.SyndicateUsecase
	Logger      *slog.Logger
}

// SyndicateHandler serves syndicate formation endpoints
type SyndicateHandler struct {
	syndicateUC usecase.SyndicateUsecase
	logger      *slog.Logger
}

// NewSyndicateHandler is the constructor for SyndicateHandler
func NewSyndicateHandler(params SyndicateHandlerParams) *SyndicateHandler {
	return &SyndicateHandler{
		syndicateUC: params.SyndicateUC,
		logger:      params.Logger,
	}
}

// SyndicateResponse adds the fill progress to a syndicate
type SyndicateResponse struct {
	*entity.Syndicate

	Status         string `json:"status"`
	PartnersNeeded int    `json:"partnersNeeded"`
	IsFilled       bool   `json:"isFilled"`
}

// CreateSyndicate handles opening a syndicate on an asset for the current user
func (h *SyndicateHandler) CreateSyndicate(c echo.Context) error {
	syndicate, err := h.syndicateUC.Create(c.Request().Context(), c.Param("id"), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSyndicateResponse(syndicate))
}

// GetSyndicate handles looking up a syndicate by its share code
func (h *SyndicateHandler) GetSyndicate(c echo.Context) error {
	syndicate, err := h.syndicateUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSyndicateResponse(syndicate))
}

// InviteQR handles rendering the invite link as a PNG
func (h *SyndicateHandler) InviteQR(c echo.Context) error {
	png, err := h.syndicateUC.InviteQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

func toSyndicateResponse(syndicate *entity.Syndicate) *SyndicateResponse {
	return &SyndicateResponse{
		Syndicate:      syndicate,
		Status:         syndicate.Status(),
		PartnersNeeded: syndicate.PartnersNeeded(),
		IsFilled:       syndicate.IsFilled(),
	}
}
