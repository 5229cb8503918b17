package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/service"

	"github.com/google/uuid"
)

func newCatalogEvent(ctx context.Context, eventType service.CatalogEventType, occurredAt time.Time) *service.CatalogEvent {
	return &service.CatalogEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: occurredAt.UTC(),
	}
}

// publishBestEffort never fails the caller, the state change it reports is already durable.
func publishBestEffort(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.CatalogEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish catalog event",
			slog.String("event_id", event.EventID),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
