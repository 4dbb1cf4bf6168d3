package usecase

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for vendor device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, vendorID uuid.UUID, deviceInfo *DeviceInfo) (*entity.VendorDevice, error)

	// GetVendorDevices retrieves all active devices for a vendor
	GetVendorDevices(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, vendorID, deviceID uuid.UUID) error

	// PruneTokens deactivates devices whose tokens the push provider rejected
	PruneTokens(ctx context.Context, fcmTokens []string) error
}
