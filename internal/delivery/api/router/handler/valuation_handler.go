package handler

import (
	"log/slog"
	"net/http"

	"coshare/internal/delivery/api/response"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ValuationHandlerParams holds dependencies for ValuationHandler, injected by Fx.
type ValuationHandlerParams struct {
	fx.In

	ValuationUC usecase.ValuationUsecase
	Logger      *slog.Logger
}

// ValuationHandler serves pricing endpoints
type ValuationHandler struct {
	valuationUC usecase.ValuationUsecase
	logger      *slog.Logger
}

// NewValuationHandler is the constructor for ValuationHandler
func NewValuationHandler(params ValuationHandlerParams) *ValuationHandler {
	return &ValuationHandler{
		valuationUC: params.ValuationUC,
		logger:      params.Logger,
	}
}

// Currencies handles listing the supported display currencies
func (h *ValuationHandler) Currencies(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.valuationUC.Currencies())
}

// Quote handles the pricing sheet of an asset in the requested currency
func (h *ValuationHandler) Quote(c echo.Context) error {
	currency, err := parseCurrency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.valuationUC.Quote(c.Request().Context(), c.Param("id"), deliverycontext.GetUserID(c), currency)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
