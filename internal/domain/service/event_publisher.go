package service

import (
	"context"

	"proximity/internal/domain/entity"
)

// ProximityEventMessage is the manager-facing feed payload for one logged event
type ProximityEventMessage struct {
	RequestID string                 `json:"request_id,omitempty"` // For distributed tracing
	Event     *entity.ProximityEvent `json:"event"`
	State     entity.SessionState    `json:"session_state,omitempty"` // Session state after the event, when known
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProximityEvent publishes a logged event to subscribers
	PublishProximityEvent(ctx context.Context, msg *ProximityEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
