package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/domain/service"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEventListLimit = 100
	maxEventListLimit     = 1000
)

type eventLogService struct {
	eventRepo repository.EventLogRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// EventLogServiceParams holds dependencies for EventLogService, injected by Fx.
type EventLogServiceParams struct {
	fx.In

	EventRepo repository.EventLogRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewEventLogService creates a new event log service instance
func NewEventLogService(params EventLogServiceParams) usecase.EventLogUsecase {
	return &eventLogService{
		eventRepo: params.EventRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Append stores the event and publishes it to the feed
func (s *eventLogService) Append(ctx context.Context, event *entity.ProximityEvent) error {
	if event == nil || !event.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type")
	}
	if event.VendorID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("vendor_id is required")
	}

	now := s.now()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = now
	}
	event.CreatedAt = now

	if err := s.eventRepo.AppendEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to append event")
	}

	publishEvents(ctx, s.publisher, deliverycontext.GetLoggerOrDefault(ctx, s.logger), "", event)

	return nil
}

// ListEvents lists events by session or vendor, oldest first
func (s *eventLogService) ListEvents(ctx context.Context, filter entity.EventFilter) ([]*entity.ProximityEvent, error) {
	if filter.VendorID == nil && filter.SessionID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vendor_id or session_id is required")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultEventListLimit
	}
	if filter.Limit > maxEventListLimit {
		filter.Limit = maxEventListLimit
	}

	events, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// publishEvents forwards logged events to the feed. Failures are logged only;
// the event log is the source of truth.
func publishEvents(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, state entity.SessionState, events ...*entity.ProximityEvent) {
	if publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, event := range events {
		msg := &service.ProximityEventMessage{
			RequestID: requestID,
			Event:     event,
			State:     state,
		}
		if err := publisher.PublishProximityEvent(ctx, msg); err != nil {
			logger.Warn("Failed to publish proximity event",
				slog.String("event_id", event.ID.String()),
				slog.String("type", string(event.Type)),
				slog.Any("error", err))
		}
	}
}
