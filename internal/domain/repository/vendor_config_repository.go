package repository

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrConfigNotFound is returned when no active config matches.
	ErrConfigNotFound = errors.New("vendor config not found")
	// ErrDuplicateConfig is returned when an active config already exists for the (vendor, zone) pair.
	ErrDuplicateConfig = errors.New("vendor config already exists")
)

// VendorConfigRepository defines the interface for vendor proximity config persistence.
type VendorConfigRepository interface {
	CreateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error

	UpdateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error

	FindConfigByID(ctx context.Context, id uuid.UUID) (*entity.VendorProximityConfig, error)

	// FindActiveConfig returns the active config for the pair; a nil zoneID selects the global config.
	FindActiveConfig(ctx context.Context, vendorID uuid.UUID, zoneID *uuid.UUID) (*entity.VendorProximityConfig, error)

	FindConfigsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorProximityConfig, error)

	// DeactivateConfig marks the config inactive so the pair can be configured again.
	DeactivateConfig(ctx context.Context, id uuid.UUID) error
}
