package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordingQuality is the audio quality requested from the recorder.
type RecordingQuality string

const (
	RecordingQualityLow    RecordingQuality = "low"
	RecordingQualityMedium RecordingQuality = "medium"
	RecordingQualityHigh   RecordingQuality = "high"
)

// IsValid checks if the RecordingQuality is a valid value.
func (q RecordingQuality) IsValid() bool {
	switch q {
	case RecordingQualityLow, RecordingQualityMedium, RecordingQualityHigh:
		return true
	default:
		return false
	}
}

// VendorProximityConfig holds per-vendor behaviour overrides.
// A nil ZoneID marks the vendor's global config.
type VendorProximityConfig struct {
	ID                 uuid.UUID        `json:"id"`
	VendorID           uuid.UUID        `json:"vendor_id"`
	ZoneID             *uuid.UUID       `json:"zone_id,omitempty"`
	RecordingQuality   RecordingQuality `json:"recording_quality"`
	Compression        bool             `json:"compression"`
	NoiseCancellation  bool             `json:"noise_cancellation"`
	ConfirmBeforeStart bool             `json:"confirm_before_start"`
	NotifyOnStart      bool             `json:"notify_on_start"`
	NotifyOnStop       bool             `json:"notify_on_stop"`
	MaxDurationSeconds int              `json:"max_duration_seconds,omitempty"` // Zero falls back to the monitor default.
	MonitoringEnabled  bool             `json:"monitoring_enabled"`
	IsActive           bool             `json:"is_active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// IsGlobal reports whether the config applies to every zone.
func (c *VendorProximityConfig) IsGlobal() bool {
	return c.ZoneID == nil
}

// ConfigSnapshot is the resolved configuration frozen into a session at start.
type ConfigSnapshot struct {
	ConfigID           *uuid.UUID       `json:"config_id,omitempty"`
	RecordingQuality   RecordingQuality `json:"recording_quality"`
	Compression        bool             `json:"compression"`
	NoiseCancellation  bool             `json:"noise_cancellation"`
	ConfirmBeforeStart bool             `json:"confirm_before_start"`
	NotifyOnStart      bool             `json:"notify_on_start"`
	NotifyOnStop       bool             `json:"notify_on_stop"`
	MaxDurationSeconds int              `json:"max_duration_seconds,omitempty"`
	MonitoringEnabled  bool             `json:"monitoring_enabled"`
}

// DefaultConfigSnapshot is used when a vendor has no active config.
func DefaultConfigSnapshot() ConfigSnapshot {
	return ConfigSnapshot{
		RecordingQuality:  RecordingQualityMedium,
		NotifyOnStart:     true,
		NotifyOnStop:      true,
		MonitoringEnabled: true,
	}
}

// Snapshot freezes the config into a ConfigSnapshot.
func (c *VendorProximityConfig) Snapshot() ConfigSnapshot {
	id := c.ID

	return ConfigSnapshot{
		ConfigID:           &id,
		RecordingQuality:   c.RecordingQuality,
		Compression:        c.Compression,
		NoiseCancellation:  c.NoiseCancellation,
		ConfirmBeforeStart: c.ConfirmBeforeStart,
		NotifyOnStart:      c.NotifyOnStart,
		NotifyOnStop:       c.NotifyOnStop,
		MaxDurationSeconds: c.MaxDurationSeconds,
		MonitoringEnabled:  c.MonitoringEnabled,
	}
}
