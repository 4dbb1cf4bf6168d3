package service

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPositionNotCached is returned when no last known position exists.
var ErrPositionNotCached = errors.New("no cached position")

// PositionUpdate is one message from the device position stream.
// Err is set instead of Position when the source reported a failure.
type PositionUpdate struct {
	VendorID uuid.UUID
	Position entity.Position
	Err      error
}

// PositionSource delivers pushed device positions for a vendor.
type PositionSource interface {
	// Subscribe starts delivering updates for the vendor into the channel until Unsubscribe.
	Subscribe(ctx context.Context, vendorID uuid.UUID, updates chan<- PositionUpdate) error

	// RequestPosition asks the device for a fresh fix. The answer arrives on the stream.
	RequestPosition(ctx context.Context, vendorID uuid.UUID) error

	Unsubscribe(vendorID uuid.UUID) error
}

// PositionCache keeps the last known position per vendor across monitor restarts.
type PositionCache interface {
	SaveLastPosition(ctx context.Context, vendorID uuid.UUID, position entity.Position) error

	// GetLastPosition returns ErrPositionNotCached when nothing is stored.
	GetLastPosition(ctx context.Context, vendorID uuid.UUID) (*entity.Position, error)
}
