package usecase

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateZoneInput represents the input for creating a proximity zone
type CreateZoneInput struct {
	Name              string               `json:"name" validate:"required,max=120"`
	Description       string               `json:"description" validate:"max=500"`
	Category          entity.ZoneCategory  `json:"category" validate:"required,zone_category"`
	Latitude          float64              `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude         float64              `json:"longitude" validate:"gte=-180,lte=180"`
	RadiusMeters      float64              `json:"radius_meters" validate:"gte=1,lte=10000"`
	ActivationEnabled *bool                `json:"activation_enabled,omitempty"` // Defaults to true
	Schedule          *entity.ZoneSchedule `json:"schedule,omitempty"`
	Timezone          string               `json:"timezone,omitempty"`
}

// UpdateZoneInput represents a partial update of a proximity zone
type UpdateZoneInput struct {
	Name              *string              `json:"name,omitempty" validate:"omitempty,max=120"`
	Description       *string              `json:"description,omitempty" validate:"omitempty,max=500"`
	Category          *entity.ZoneCategory `json:"category,omitempty" validate:"omitempty,zone_category"`
	Latitude          *float64             `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64             `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	RadiusMeters      *float64             `json:"radius_meters,omitempty" validate:"omitempty,gte=1,lte=10000"`
	ActivationEnabled *bool                `json:"activation_enabled,omitempty"`
	Schedule          *entity.ZoneSchedule `json:"schedule,omitempty"`
	ClearSchedule     bool                 `json:"clear_schedule,omitempty"`
	Timezone          *string              `json:"timezone,omitempty"`
	IsActive          *bool                `json:"is_active,omitempty"`
}

// DeleteZoneResult reports how a zone was removed
type DeleteZoneResult struct {
	ZoneID      uuid.UUID `json:"zone_id"`
	SoftDeleted bool      `json:"soft_deleted"`
}

// ZoneUsecase defines the interface for proximity zone management. Mutations are manager-only.
type ZoneUsecase interface {
	CreateZone(ctx context.Context, managerID uuid.UUID, input *CreateZoneInput) (*entity.ProximityZone, error)
	UpdateZone(ctx context.Context, managerID, zoneID uuid.UUID, input *UpdateZoneInput) (*entity.ProximityZone, error)
	DeleteZone(ctx context.Context, managerID, zoneID uuid.UUID) (*DeleteZoneResult, error)
	GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.ProximityZone, error)
	ListZones(ctx context.Context, ownerID *uuid.UUID) ([]*entity.ProximityZone, error)

	// FindCandidateZones returns active zones that may be within radiusMeters of the position
	FindCandidateZones(ctx context.Context, position entity.Position, radiusMeters float64) ([]*entity.ProximityZone, error)
}
