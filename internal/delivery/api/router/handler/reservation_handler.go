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

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Logger        *slog.Logger
}

// ReservationHandler serves the lead capture endpoint
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		logger:        params.Logger,
	}
}

// ReserveRequest represents the reservation form. Omit assetId to join the waitlist.
type ReserveRequest struct {
	AssetID    string `json:"assetId"`
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Accredited bool   `json:"accredited"`
}

// Reserve handles an allocation request or waitlist sign-up
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req ReserveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.Reserve(c.Request().Context(), &usecase.ReserveInput{
		AssetID:    req.AssetID,
		UserID:     deliverycontext.GetUserID(c),
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Accredited: req.Accredited,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reservation)
}
