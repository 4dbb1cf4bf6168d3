// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, vendorID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.VendorDevice, error) {
	if deviceInfo == nil || deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	devices, err := s.deviceRepo.FindDevicesByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by vendor")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := time.Now()
	device := &entity.VendorDevice{
		ID:        uuid.New(),
		VendorID:  vendorID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// GetVendorDevices retrieves all active devices for a vendor
func (s *deviceService) GetVendorDevices(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by vendor")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, vendorID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.VendorID != vendorID {
		return domainerrors.ErrForbidden.WithDetails("device belongs to another vendor")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// PruneTokens deactivates devices whose tokens the push provider rejected
func (s *deviceService) PruneTokens(ctx context.Context, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	if err := s.deviceRepo.DeactivateDevices(ctx, fcmTokens); err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}
