package entity

import (
	"time"

	"github.com/google/uuid"
)

// Zone radius bounds in meters.
const (
	MinZoneRadiusMeters = 1.0
	MaxZoneRadiusMeters = 10000.0
)

// ZoneCategory classifies what happens inside a zone.
type ZoneCategory string

const (
	ZoneCategoryShowroom  ZoneCategory = "showroom"
	ZoneCategoryTestDrive ZoneCategory = "test_drive"
	ZoneCategoryDelivery  ZoneCategory = "delivery"
	ZoneCategoryMeeting   ZoneCategory = "meeting"
	ZoneCategoryOther     ZoneCategory = "other"
)

// IsValid checks if the ZoneCategory is a valid value.
func (c ZoneCategory) IsValid() bool {
	switch c {
	case ZoneCategoryShowroom, ZoneCategoryTestDrive, ZoneCategoryDelivery, ZoneCategoryMeeting, ZoneCategoryOther:
		return true
	default:
		return false
	}
}

// TimeWindow is an inclusive range of minutes since local midnight (0..1439).
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ZoneSchedule restricts when a zone can trigger a session.
// Weekdays use ISO numbering, Monday=1 through Sunday=7.
type ZoneSchedule struct {
	Weekdays []int        `json:"weekdays"`
	Windows  []TimeWindow `json:"windows,omitempty"`
}

// ProximityZone is a named circular region that triggers recording sessions.
type ProximityZone struct {
	ID                uuid.UUID     `json:"id"`
	OwnerID           uuid.UUID     `json:"owner_id"` // Manager that owns the zone.
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Category          ZoneCategory  `json:"category"`
	Latitude          float64       `json:"latitude"`
	Longitude         float64       `json:"longitude"`
	RadiusMeters      float64       `json:"radius_meters"`
	ActivationEnabled bool          `json:"activation_enabled"`
	Schedule          *ZoneSchedule `json:"schedule,omitempty"`
	Timezone          string        `json:"timezone"`
	IsActive          bool          `json:"is_active"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	DeletedAt         *time.Time    `json:"deleted_at,omitempty"`

	// ScheduleMalformed is set when the stored schedule could not be decoded.
	// Such zones are treated as always active.
	ScheduleMalformed bool `json:"-"`
}

// Center returns the zone center as a position without accuracy or timestamp.
func (z *ProximityZone) Center() Position {
	return Position{Latitude: z.Latitude, Longitude: z.Longitude}
}

// NearbyZone describes a zone close to, but not containing, a position.
type NearbyZone struct {
	ZoneID         uuid.UUID `json:"zone_id"`
	Name           string    `json:"name"`
	DistanceMeters float64   `json:"distance_meters"`
	RadiusMeters   float64   `json:"radius_meters"`
}
