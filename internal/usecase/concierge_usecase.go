package usecase

import (
	"context"

	"coshare/internal/domain/entity"
	"coshare/internal/domain/service"
)

// ConciergeUsecase turns catalog events into follow-up tasks.
type ConciergeUsecase interface {
	// HandleEvent records the task for an event. Replayed events are ignored.
	HandleEvent(ctx context.Context, event *service.CatalogEvent) (*entity.ConciergeTask, error)

	// Tasks lists tasks newest first
	Tasks(ctx context.Context) []*entity.ConciergeTask
}
