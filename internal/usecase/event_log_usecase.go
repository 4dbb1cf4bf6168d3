package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// EventLogUsecase is the append-only proximity event log
type EventLogUsecase interface {
	// Append stores the event and publishes it to the event feed. Appending an
	// event id twice is a no-op.
	Append(ctx context.Context, event *entity.ProximityEvent) error
	ListEvents(ctx context.Context, filter entity.EventFilter) ([]*entity.ProximityEvent, error)
}
