package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorProximityConfigModel is the GORM-specific struct for the 'vendor_proximity_configs' table.
// A NULL zone_id marks the vendor's global config.
type VendorProximityConfigModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key"`
	VendorID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	ZoneID             *uuid.UUID `gorm:"type:uuid;index"`
	RecordingQuality   string     `gorm:"type:varchar(16);not null;default:'medium'"`
	Compression        bool       `gorm:"not null;default:false"`
	NoiseCancellation  bool       `gorm:"not null;default:false"`
	ConfirmBeforeStart bool       `gorm:"not null;default:false"`
	NotifyOnStart      bool       `gorm:"not null;default:true"`
	NotifyOnStop       bool       `gorm:"not null;default:true"`
	MaxDurationSeconds int        `gorm:"not null;default:0"`
	MonitoringEnabled  bool       `gorm:"not null;default:true"`
	IsActive           bool       `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProximityConfigModel) TableName() string {
	return "vendor_proximity_configs"
}
