package repository

import (
	"context"

	"proximity/internal/domain/entity"
)

// EventLogRepository is the append-only store for proximity events.
type EventLogRepository interface {
	// AppendEvent inserts the event; an event whose id already exists is ignored.
	AppendEvent(ctx context.Context, event *entity.ProximityEvent) error

	// ListEvents returns events oldest first.
	ListEvents(ctx context.Context, filter entity.EventFilter) ([]*entity.ProximityEvent, error)
}
