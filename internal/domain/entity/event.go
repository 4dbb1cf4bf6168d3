package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a proximity domain event. Values are the persisted wire names.
type EventType string

const (
	EventTypeZoneEntry         EventType = "entrada_zona"
	EventTypeZoneExit          EventType = "salida_zona"
	EventTypeRecordingStarted  EventType = "grabacion_iniciada"
	EventTypeRecordingFinished EventType = "grabacion_finalizada"
	EventTypeGPSError          EventType = "error_gps"
	EventTypeLocationDetected  EventType = "deteccion_ubicacion"
)

// IsValid checks if the EventType is a valid value.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeZoneEntry, EventTypeZoneExit, EventTypeRecordingStarted,
		EventTypeRecordingFinished, EventTypeGPSError, EventTypeLocationDetected:
		return true
	default:
		return false
	}
}

// ProximityEvent is an immutable entry in the event log.
type ProximityEvent struct {
	ID              uuid.UUID      `json:"id"`
	Type            EventType      `json:"type"`
	VendorID        uuid.UUID      `json:"vendor_id"`
	ZoneID          *uuid.UUID     `json:"zone_id,omitempty"`
	SessionID       *uuid.UUID     `json:"session_id,omitempty"`
	Position        *Position      `json:"position,omitempty"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	OccurredAt      time.Time      `json:"occurred_at"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EventFilter narrows an event listing. At least one of VendorID or SessionID is set.
type EventFilter struct {
	VendorID  *uuid.UUID
	SessionID *uuid.UUID
	Types     []EventType
	Since     *time.Time
	Limit     int
}
