// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for vendor device persistence.
type DeviceRepository interface {
	// CreateDevice persists a new device for a vendor.
	CreateDevice(ctx context.Context, device *entity.VendorDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.VendorDevice, error)

	// FindDevicesByVendor retrieves all devices for a vendor (including inactive).
	FindDevicesByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error)

	// FindActiveDevicesByVendor retrieves all active devices for a vendor.
	FindActiveDevicesByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevices marks every device holding one of the tokens as inactive.
	DeactivateDevices(ctx context.Context, fcmTokens []string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
