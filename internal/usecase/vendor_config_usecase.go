package usecase

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertConfigInput creates or replaces the config for a (vendor, zone) pair
type UpsertConfigInput struct {
	ZoneID             *uuid.UUID              `json:"zone_id,omitempty"`
	RecordingQuality   entity.RecordingQuality `json:"recording_quality" validate:"omitempty,oneof=low medium high"`
	Compression        bool                    `json:"compression"`
	NoiseCancellation  bool                    `json:"noise_cancellation"`
	ConfirmBeforeStart bool                    `json:"confirm_before_start"`
	NotifyOnStart      bool                    `json:"notify_on_start"`
	NotifyOnStop       bool                    `json:"notify_on_stop"`
	MaxDurationSeconds int                     `json:"max_duration_seconds" validate:"gte=0,lte=86400"`
	MonitoringEnabled  bool                    `json:"monitoring_enabled"`
}

// VendorConfigUsecase defines the interface for per-vendor proximity behaviour
type VendorConfigUsecase interface {
	UpsertConfig(ctx context.Context, vendorID uuid.UUID, input *UpsertConfigInput) (*entity.VendorProximityConfig, error)
	ListConfigs(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorProximityConfig, error)
	DeleteConfig(ctx context.Context, vendorID, configID uuid.UUID) error

	// ResolveConfig returns the zone-scoped config if present, else the global one, else defaults
	ResolveConfig(ctx context.Context, vendorID, zoneID uuid.UUID) (entity.ConfigSnapshot, error)
}
