package usecase

import (
	"context"

	"coshare/internal/domain/entity"
)

// ReserveInput is the lead captured by the reservation form.
type ReserveInput struct {
	AssetID    string // Empty for a waitlist lead
	UserID     string
	FullName   string
	Email      string
	Phone      string
	Accredited bool
}

// ReservationUsecase captures allocation requests and waitlist leads.
type ReservationUsecase interface {
	Reserve(ctx context.Context, input *ReserveInput) (*entity.Reservation, error)
}
