package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxKind tells the flusher how to deliver an item.
type OutboxKind string

const (
	OutboxKindEvent OutboxKind = "event"
	OutboxKindRelay OutboxKind = "relay"
)

// OutboxItem is one undelivered message. ID is the event or relay message id,
// so re-enqueueing the same item is a no-op.
type OutboxItem struct {
	ID        uuid.UUID
	Kind      OutboxKind
	Payload   []byte
	Attempts  int
	LastError string
	CreatedAt time.Time
}

// EventOutbox is a durable local queue for deliveries that failed while offline.
type EventOutbox interface {
	Enqueue(ctx context.Context, item *OutboxItem) error

	// Pending returns undelivered items oldest first.
	Pending(ctx context.Context, limit int) ([]*OutboxItem, error)

	MarkDelivered(ctx context.Context, id uuid.UUID) error

	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error

	// OldestPending returns the creation time of the oldest undelivered item, or nil.
	OldestPending(ctx context.Context) (*time.Time, error)

	Close() error
}
