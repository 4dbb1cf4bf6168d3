package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorDeviceModel maps the 'vendor_devices' table: one row per app install
// that receives confirmation prompts and session updates.
type VendorDeviceModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_devices_vendor_device,priority:1"`
	DeviceID string    `gorm:"type:varchar(255);not null;index:idx_vendor_devices_vendor_device,priority:2"`
	// Looked up when the push provider reports tokens as unregistered.
	FCMToken  string `gorm:"type:varchar(255);not null;index:idx_vendor_devices_fcm_token"`
	Platform  string `gorm:"type:varchar(50);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VendorDeviceModel) TableName() string {
	return "vendor_devices"
}
