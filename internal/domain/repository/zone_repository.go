package repository

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrZoneNotFound is returned when a zone does not exist or was deleted.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneFilter narrows zone listings.
type ZoneFilter struct {
	OwnerID    *uuid.UUID
	ActiveOnly bool
}

// ZoneRepository defines the interface for proximity zone persistence.
// Soft-deleted zones are never returned.
type ZoneRepository interface {
	CreateZone(ctx context.Context, zone *entity.ProximityZone) error

	UpdateZone(ctx context.Context, zone *entity.ProximityZone) error

	FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.ProximityZone, error)

	ListZones(ctx context.Context, filter ZoneFilter) ([]*entity.ProximityZone, error)

	// FindActiveZonesInBound returns active zones whose centers fall inside the bound.
	FindActiveZonesInBound(ctx context.Context, bound orb.Bound) ([]*entity.ProximityZone, error)

	// FindActivatableZonesByOwner returns the owner's active zones with activation enabled.
	FindActivatableZonesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ProximityZone, error)

	// LockOwner serializes zone writes for one owner until the surrounding transaction ends.
	LockOwner(ctx context.Context, ownerID uuid.UUID) error

	SoftDeleteZone(ctx context.Context, id uuid.UUID) error

	HardDeleteZone(ctx context.Context, id uuid.UUID) error
}
