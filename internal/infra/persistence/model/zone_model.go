package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProximityZoneModel is the GORM-specific struct for the 'proximity_zones' table.
// The schedule column holds {"weekdays": [...], "windows": [{"start": m, "end": m}]} or NULL.
type ProximityZoneModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key"`
	OwnerID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name              string         `gorm:"type:varchar(120);not null"`
	Description       string         `gorm:"type:text"`
	Category          string         `gorm:"type:varchar(32);not null"`
	Latitude          float64        `gorm:"type:decimal(10,8);not null;index:idx_proximity_zones_center"`
	Longitude         float64        `gorm:"type:decimal(11,8);not null;index:idx_proximity_zones_center"`
	RadiusMeters      float64        `gorm:"type:double precision;not null"`
	ActivationEnabled bool           `gorm:"not null;default:true"`
	Schedule          datatypes.JSON `gorm:"type:jsonb"`
	Timezone          string         `gorm:"type:varchar(64);not null;default:'UTC'"`
	IsActive          bool           `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProximityZoneModel) TableName() string {
	return "proximity_zones"
}
