package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	"coshare/internal/domain/service"
	"coshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxConciergeTasks bounds the in-memory task list, the oldest tasks are dropped first.
const maxConciergeTasks = 500

var (
	// ErrMalformedEvent is returned for events missing their id or reference
	ErrMalformedEvent = errors.New("malformed catalog event")
	// ErrUnsupportedEvent is returned for event types the concierge does not handle
	ErrUnsupportedEvent = errors.New("unsupported catalog event type")
)

type conciergeService struct {
	mu    sync.RWMutex
	tasks []*entity.ConciergeTask // newest first
	seen  map[string]struct{}

	logger *slog.Logger
	now    func() time.Time
}

// ConciergeServiceParams holds dependencies for ConciergeService, injected by Fx.
type ConciergeServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewConciergeService creates the follow-up task list
func NewConciergeService(params ConciergeServiceParams) usecase.ConciergeUsecase {
	return &conciergeService{
		seen:   make(map[string]struct{}),
		logger: params.Logger,
		now:    time.Now,
	}
}

// HandleEvent derives a task from an event. A redelivered event returns the task it already produced.
func (s *conciergeService) HandleEvent(ctx context.Context, event *service.CatalogEvent) (*entity.ConciergeTask, error) {
	task, err := s.taskFor(event)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[event.EventID]; dup {
		for _, existing := range s.tasks {
			if existing.EventID == event.EventID {
				copied := *existing

				return &copied, nil
			}
		}
	}

	s.tasks = append([]*entity.ConciergeTask{task}, s.tasks...)
	s.seen[event.EventID] = struct{}{}
	if len(s.tasks) > maxConciergeTasks {
		for _, dropped := range s.tasks[maxConciergeTasks:] {
			delete(s.seen, dropped.EventID)
		}
		s.tasks = s.tasks[:maxConciergeTasks]
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Concierge task created",
		slog.String("task_id", task.ID),
		slog.String("kind", string(task.Kind)),
		slog.String("reference", task.Reference),
	)

	copied := *task

	return &copied, nil
}

func (s *conciergeService) taskFor(event *service.CatalogEvent) (*entity.ConciergeTask, error) {
	if event == nil || event.EventID == "" {
		return nil, errors.Wrap(ErrMalformedEvent, "missing event id")
	}

	task := &entity.ConciergeTask{
		ID:        "task-" + uuid.NewString(),
		Subject:   event.Subject,
		EventID:   event.EventID,
		RequestID: event.RequestID,
		CreatedAt: s.now().UTC(),
	}

	switch event.Type {
	case service.EventReservationRequested:
		task.Kind = entity.TaskCallLead
		task.Reference = event.ReservationID
	case service.EventAssetListed:
		task.Kind = entity.TaskReviewListing
		task.Reference = event.AssetID
	default:
		return nil, errors.Wrapf(ErrUnsupportedEvent, "type %q", event.Type)
	}

	if task.Reference == "" {
		return nil, errors.Wrapf(ErrMalformedEvent, "%s event %s has no reference", event.Type, event.EventID)
	}

	return task, nil
}

// Tasks returns copies of the tasks, newest first
func (s *conciergeService) Tasks(ctx context.Context) []*entity.ConciergeTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.ConciergeTask, len(s.tasks))
	for idx, task := range s.tasks {
		copied := *task
		result[idx] = &copied
	}

	return result
}
