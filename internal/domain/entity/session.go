package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle state of a recording session.
type SessionState string

const (
	SessionStateInitiated           SessionState = "INITIATED"
	SessionStatePendingConfirmation SessionState = "PENDING_CONFIRMATION"
	SessionStateInProgress          SessionState = "IN_PROGRESS"
	SessionStateCompleted           SessionState = "COMPLETED"
	SessionStateCancelled           SessionState = "CANCELLED"
)

// OpenSessionStates lists the states counted by the one-open-session-per-vendor rule.
var OpenSessionStates = []SessionState{
	SessionStateInitiated,
	SessionStatePendingConfirmation,
	SessionStateInProgress,
}

// IsValid checks if the SessionState is a valid value.
func (s SessionState) IsValid() bool {
	switch s {
	case SessionStateInitiated, SessionStatePendingConfirmation, SessionStateInProgress,
		SessionStateCompleted, SessionStateCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the state still blocks a new session for the vendor.
func (s SessionState) IsOpen() bool {
	switch s {
	case SessionStateInitiated, SessionStatePendingConfirmation, SessionStateInProgress:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s SessionState) IsTerminal() bool {
	return s == SessionStateCompleted || s == SessionStateCancelled
}

// ActivationType records how a session was started.
type ActivationType string

const (
	ActivationAutomatic ActivationType = "automatic"
	ActivationManual    ActivationType = "manual"
	ActivationConfirmed ActivationType = "confirmed"
)

// IsValid checks if the ActivationType is a valid value.
func (a ActivationType) IsValid() bool {
	switch a {
	case ActivationAutomatic, ActivationManual, ActivationConfirmed:
		return true
	default:
		return false
	}
}

// FinishReason explains why an in-progress session was completed.
type FinishReason string

const (
	FinishReasonZoneExit            FinishReason = "zone_exit"
	FinishReasonManualStop          FinishReason = "manual_stop"
	FinishReasonMaxDurationExceeded FinishReason = "max_duration_exceeded"
	FinishReasonSystemStop          FinishReason = "system_stop"
)

// IsValid checks if the FinishReason is a valid value.
func (r FinishReason) IsValid() bool {
	switch r {
	case FinishReasonZoneExit, FinishReasonManualStop, FinishReasonMaxDurationExceeded, FinishReasonSystemStop:
		return true
	default:
		return false
	}
}

// IsAbnormal reports whether the reason is recorded as an abnormal termination.
func (r FinishReason) IsAbnormal() bool {
	return r == FinishReasonMaxDurationExceeded || r == FinishReasonSystemStop
}

// CancelReason explains why a session never reached recording.
type CancelReason string

const (
	CancelReasonUserDeclined        CancelReason = "user_declined"
	CancelReasonConfirmationTimeout CancelReason = "confirmation_timeout"
	CancelReasonSystemStop          CancelReason = "system_stop"
)

// IsValid checks if the CancelReason is a valid value.
func (r CancelReason) IsValid() bool {
	switch r {
	case CancelReasonUserDeclined, CancelReasonConfirmationTimeout, CancelReasonSystemStop:
		return true
	default:
		return false
	}
}

// ProximityRecordingSession is one detection-to-completion lifecycle for a vendor in a zone.
type ProximityRecordingSession struct {
	ID                  uuid.UUID      `json:"id"`
	VendorID            uuid.UUID      `json:"vendor_id"`
	ZoneID              uuid.UUID      `json:"zone_id"`
	ProspectID          *string        `json:"prospect_id,omitempty"`
	Config              ConfigSnapshot `json:"config"`
	EntryPosition       Position       `json:"entry_position"`
	ExitPosition        *Position      `json:"exit_position,omitempty"`
	State               SessionState   `json:"state"`
	ActivationType      ActivationType `json:"activation_type"`
	EntryDistanceMeters float64        `json:"entry_distance_meters"`
	ExitDistanceMeters  *float64       `json:"exit_distance_meters,omitempty"`
	TimeInZoneSeconds   *int64         `json:"time_in_zone_seconds,omitempty"`
	RecordingID         *string        `json:"recording_id,omitempty"` // External conversation recording.
	FinishReason        *FinishReason  `json:"finish_reason,omitempty"`
	TerminationReason   string         `json:"termination_reason,omitempty"`
	DeviceInfo          map[string]any `json:"device_info,omitempty"`
	StartedAt           *time.Time     `json:"started_at,omitempty"` // Entered IN_PROGRESS.
	EndedAt             *time.Time     `json:"ended_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// EndReason returns the stored reason of a finished or cancelled session, or "".
func (s *ProximityRecordingSession) EndReason() string {
	if s.FinishReason != nil {
		return string(*s.FinishReason)
	}

	return s.TerminationReason
}

// FinishedFor reports whether the session was completed with the given reason.
func (s *ProximityRecordingSession) FinishedFor(reason FinishReason) bool {
	return s.State == SessionStateCompleted && s.FinishReason != nil && *s.FinishReason == reason
}

// Clone returns a deep copy so callers can mutate without affecting shared references.
func (s *ProximityRecordingSession) Clone() *ProximityRecordingSession {
	if s == nil {
		return nil
	}
	c := *s
	if s.ExitPosition != nil {
		p := *s.ExitPosition
		c.ExitPosition = &p
	}
	if s.ExitDistanceMeters != nil {
		v := *s.ExitDistanceMeters
		c.ExitDistanceMeters = &v
	}
	if s.TimeInZoneSeconds != nil {
		v := *s.TimeInZoneSeconds
		c.TimeInZoneSeconds = &v
	}
	if s.RecordingID != nil {
		v := *s.RecordingID
		c.RecordingID = &v
	}
	if s.ProspectID != nil {
		v := *s.ProspectID
		c.ProspectID = &v
	}
	if s.FinishReason != nil {
		v := *s.FinishReason
		c.FinishReason = &v
	}
	if s.StartedAt != nil {
		v := *s.StartedAt
		c.StartedAt = &v
	}
	if s.EndedAt != nil {
		v := *s.EndedAt
		c.EndedAt = &v
	}
	if s.DeviceInfo != nil {
		c.DeviceInfo = make(map[string]any, len(s.DeviceInfo))
		for k, v := range s.DeviceInfo {
			c.DeviceInfo[k] = v
		}
	}

	return &c
}
