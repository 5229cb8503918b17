package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/service"
	"coshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type reservationService struct {
	catalog   usecase.CatalogUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	Catalog   usecase.CatalogUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewReservationService creates the lead capture service
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		catalog:   params.Catalog,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Reserve captures an allocation request for a public asset, or a waitlist lead when no asset is given
func (s *reservationService) Reserve(ctx context.Context, input *usecase.ReserveInput) (*entity.Reservation, error) {
	if missing := missingLeadFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing " + strings.Join(missing, ", "))
	}

	reservation := &entity.Reservation{
		ID:         "rsv-" + uuid.NewString(),
		Kind:       entity.ReservationWaitlist,
		UserID:     input.UserID,
		FullName:   strings.TrimSpace(input.FullName),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Accredited: input.Accredited,
		Deposit:    decimal.Zero,
		Status:     entity.ReservationStatusReceived,
		CreatedAt:  s.now().UTC(),
	}

	if input.AssetID != "" {
		asset, err := s.catalog.GetByID(ctx, input.AssetID)
		if err != nil {
			return nil, err
		}
		if !asset.IsPublic() {
			return nil, domainerrors.ErrAssetNotPublic.WithDetails(asset.ID)
		}

		reservation.Kind = entity.ReservationAllocation
		reservation.AssetID = asset.ID
		reservation.AssetName = asset.Name
		reservation.Deposit = entity.ReservationDeposit
	}

	s.log(ctx).Info("Reservation received",
		slog.String("reservation_id", reservation.ID),
		slog.String("kind", string(reservation.Kind)),
		slog.String("asset_id", reservation.AssetID),
		slog.Bool("accredited", reservation.Accredited),
	)

	s.publishRequested(ctx, reservation)

	return reservation, nil
}

func missingLeadFields(input *usecase.ReserveInput) []string {
	if input == nil {
		return []string{"input"}
	}

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"fullName", input.FullName},
		{"email", input.Email},
		{"phone", input.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

func (s *reservationService) publishRequested(ctx context.Context, reservation *entity.Reservation) {
	event := newCatalogEvent(ctx, service.EventReservationRequested, reservation.CreatedAt)
	event.ReservationID = reservation.ID
	event.AssetID = reservation.AssetID
	event.OwnerID = reservation.UserID

	if reservation.Kind == entity.ReservationWaitlist {
		event.Subject = fmt.Sprintf("Call %s about the off-market waitlist", reservation.FullName)
	} else {
		event.Subject = fmt.Sprintf("Call %s about %s", reservation.FullName, reservation.AssetName)
	}

	event.Payload = map[string]any{
		"kind":       string(reservation.Kind),
		"email":      reservation.Email,
		"phone":      reservation.Phone,
		"accredited": reservation.Accredited,
		"deposit":    reservation.Deposit.String(),
	}

	publishBestEffort(ctx, s.publisher, s.log(ctx), event)
}
