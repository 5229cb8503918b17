package usecase

import (
	"context"

	"coshare/internal/domain/entity"
)

// SchedulingUsecase exposes the usage calendar of an asset.
type SchedulingUsecase interface {
	// Availability returns the booking window of an asset
	Availability(ctx context.Context, assetID string) (*entity.Availability, error)

	// RequestBooking records a request for free days in the window
	RequestBooking(ctx context.Context, assetID, userID string, days []int) (*entity.BookingRequest, error)
}
