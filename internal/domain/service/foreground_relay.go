package service

import (
	"context"
	"time"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
)

// RelayKind classifies messages sent from the monitor to the foreground app.
type RelayKind string

const (
	RelayKindTransition          RelayKind = "transition"
	RelayKindConfirmationRequest RelayKind = "confirmation_request"
	RelayKindAlert               RelayKind = "alert"
)

// RelayMessage is delivered at least once and in sequence order per vendor.
// Consumers dedupe by ID.
type RelayMessage struct {
	ID       uuid.UUID                         `json:"id"`
	VendorID uuid.UUID                         `json:"vendor_id"`
	Sequence uint64                            `json:"sequence"`
	Kind     RelayKind                         `json:"kind"`
	Session  *entity.ProximityRecordingSession `json:"session,omitempty"`
	Reason   string                            `json:"reason,omitempty"`
	Alert    string                            `json:"alert,omitempty"`
	SentAt   time.Time                         `json:"sent_at"`
}

// ForegroundRelay publishes monitor messages to the foreground application.
type ForegroundRelay interface {
	Relay(ctx context.Context, msg *RelayMessage) error
}

// ConfirmationAnswer is the vendor's reply to a confirmation prompt.
type ConfirmationAnswer struct {
	SessionID uuid.UUID `json:"session_id"`
	Accepted  bool      `json:"accepted"`
}

// ConfirmationSource delivers confirmation answers for a vendor.
type ConfirmationSource interface {
	SubscribeAnswers(ctx context.Context, vendorID uuid.UUID, answers chan<- ConfirmationAnswer) error

	UnsubscribeAnswers(vendorID uuid.UUID) error
}
