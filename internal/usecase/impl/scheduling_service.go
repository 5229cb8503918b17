package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type schedulingService struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
	booked  func() []int
	now     func() time.Time
}

// SchedulingServiceParams holds dependencies for SchedulingService, injected by Fx.
type SchedulingServiceParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
	Logger  *slog.Logger
}

// NewSchedulingService creates the scheduling service over the static booking calendar
func NewSchedulingService(params SchedulingServiceParams) usecase.SchedulingUsecase {
	return &schedulingService{
		catalog: params.Catalog,
		logger:  params.Logger,
		booked:  entity.MockBookedDays,
		now:     time.Now,
	}
}

// Availability returns the 30 day window of an existing asset
func (s *schedulingService) Availability(ctx context.Context, assetID string) (*entity.Availability, error) {
	asset, err := s.catalog.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return entity.NewAvailability(asset.ID, s.booked()), nil
}

// RequestBooking validates the selection against the calendar and records the request
func (s *schedulingService) RequestBooking(ctx context.Context, assetID, userID string, days []int) (*entity.BookingRequest, error) {
	availability, err := s.Availability(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if err := availability.CheckDays(days); err != nil {
		if errors.Is(err, entity.ErrDayUnavailable) {
			return nil, domainerrors.ErrDayUnavailable.WithDetails(err.Error())
		}

		return nil, domainerrors.ErrInvalidBooking.WithDetails(err.Error())
	}

	selected := slices.Clone(days)
	slices.Sort(selected)

	request := &entity.BookingRequest{
		ID:          "bk-" + uuid.NewString(),
		AssetID:     assetID,
		UserID:      userID,
		Days:        selected,
		Status:      entity.BookingStatusRequested,
		RequestedAt: s.now().UTC(),
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Booking requested",
		slog.String("booking_id", request.ID),
		slog.String("asset_id", assetID),
		slog.Any("days", selected),
	)

	return request, nil
}
