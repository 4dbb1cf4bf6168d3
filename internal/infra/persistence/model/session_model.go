package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProximitySessionModel is the GORM-specific struct for the 'proximity_recording_sessions' table.
// At most one row per vendor may be in an open state; see OpenSessionIndexDDL.
type ProximitySessionModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key"`
	VendorID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	ZoneID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProspectID          *string        `gorm:"type:varchar(128)"`
	Config              datatypes.JSON `gorm:"type:jsonb;not null"`
	EntryLatitude       float64        `gorm:"type:decimal(10,8);not null"`
	EntryLongitude      float64        `gorm:"type:decimal(11,8);not null"`
	EntryAccuracy       float64        `gorm:"type:double precision;not null;default:0"`
	EntryAt             time.Time      `gorm:"not null"`
	ExitLatitude        *float64       `gorm:"type:decimal(10,8)"`
	ExitLongitude       *float64       `gorm:"type:decimal(11,8)"`
	ExitAccuracy        *float64       `gorm:"type:double precision"`
	ExitAt              *time.Time
	State               string   `gorm:"type:varchar(32);not null;index"`
	ActivationType      string   `gorm:"type:varchar(16);not null"`
	EntryDistanceMeters float64  `gorm:"type:double precision;not null"`
	ExitDistanceMeters  *float64 `gorm:"type:double precision"`
	TimeInZoneSeconds   *int64
	RecordingID         *string        `gorm:"type:varchar(128)"`
	FinishReason        *string        `gorm:"type:varchar(32)"`
	TerminationReason   string         `gorm:"type:varchar(64)"`
	DeviceInfo          datatypes.JSON `gorm:"type:jsonb"`
	StartedAt           *time.Time
	EndedAt             *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximitySessionModel) TableName() string {
	return "proximity_recording_sessions"
}

// OpenSessionIndexDDL enforces the one-open-session-per-vendor rule in the database.
const OpenSessionIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS uq_proximity_sessions_open_vendor
ON proximity_recording_sessions (vendor_id)
WHERE state IN ('INITIATED', 'PENDING_CONFIRMATION', 'IN_PROGRESS')`

// ActiveConfigIndexDDL allows one active config per (vendor, zone) pair, treating NULL zone as global.
const ActiveConfigIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS uq_vendor_proximity_configs_active
ON vendor_proximity_configs (vendor_id, COALESCE(zone_id, '00000000-0000-0000-0000-000000000000'::uuid))
WHERE is_active`
