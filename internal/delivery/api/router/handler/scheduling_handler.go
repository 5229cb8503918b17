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

// SchedulingHandlerParams holds dependencies for SchedulingHandler, injected by Fx.
type SchedulingHandlerParams struct {
	fx.In

	SchedulingUC usecase.SchedulingUsecase
	Logger       *slog.Logger
}

// SchedulingHandler serves the usage calendar endpoints
type SchedulingHandler struct {
	schedulingUC usecase.SchedulingUsecase
	logger       *slog.Logger
}

// NewSchedulingHandler is the constructor for SchedulingHandler
func NewSchedulingHandler(params SchedulingHandlerParams) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingUC: params.SchedulingUC,
		logger:       params.Logger,
	}
}

// BookingRequest represents the request body for requesting usage days
type BookingRequest struct {
	Days []int `json:"days" validate:"required,min=1"`
}

// Availability handles the booking window of an asset
func (h *SchedulingHandler) Availability(c echo.Context) error {
	availability, err := h.schedulingUC.Availability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability)
}

// RequestBooking handles a usage request by the current user
func (h *SchedulingHandler) RequestBooking(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.schedulingUC.RequestBooking(c.Request().Context(), c.Param("id"), deliverycontext.GetUserID(c), req.Days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}
