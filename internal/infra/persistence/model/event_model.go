package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProximityEventModel is the GORM-specific struct for the append-only 'proximity_events' table.
// Seq gives a stable order for events sharing an occurred_at timestamp.
type ProximityEventModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	Seq             int64      `gorm:"type:bigserial;autoIncrement;not null;uniqueIndex"`
	Type            string     `gorm:"type:varchar(32);not null;index"`
	VendorID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_proximity_events_vendor_time"`
	ZoneID          *uuid.UUID `gorm:"type:uuid"`
	SessionID       *uuid.UUID `gorm:"type:uuid;index"`
	Latitude        *float64   `gorm:"type:decimal(10,8)"`
	Longitude       *float64   `gorm:"type:decimal(11,8)"`
	AccuracyMeters  *float64   `gorm:"type:double precision"`
	PositionAt      *time.Time
	ConfidenceScore *float64       `gorm:"type:double precision"`
	Metadata        datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt      time.Time      `gorm:"not null;index:idx_proximity_events_vendor_time"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximityEventModel) TableName() string {
	return "proximity_events"
}
