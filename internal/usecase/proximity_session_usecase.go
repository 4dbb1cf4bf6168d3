package usecase

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
)

// StartSessionInput represents a detection or manual start request
type StartSessionInput struct {
	VendorID       uuid.UUID             `json:"vendor_id"`
	Position       entity.Position       `json:"position"`
	ProspectID     *string               `json:"prospect_id,omitempty"`
	ActivationType entity.ActivationType `json:"activation_type"`
	DeviceInfo     map[string]any        `json:"device_info,omitempty"`
}

// StartSessionOutput reports the outcome of a start attempt.
// When no zone matches, Created is false and NearbyZones holds diagnostics.
type StartSessionOutput struct {
	Created              bool                              `json:"created"`
	Session              *entity.ProximityRecordingSession `json:"session,omitempty"`
	Zone                 *entity.ProximityZone             `json:"zone,omitempty"`
	RequiresConfirmation bool                              `json:"requires_confirmation"`
	NearbyZones          []entity.NearbyZone               `json:"nearby_zones,omitempty"`
}

// FinishSessionInput represents a finish request
type FinishSessionInput struct {
	SessionID         uuid.UUID           `json:"session_id"`
	Reason            entity.FinishReason `json:"reason"`
	ExitPosition      *entity.Position    `json:"exit_position,omitempty"`
	LinkedRecordingID *string             `json:"linked_recording_id,omitempty"`
}

// ProximitySessionUsecase drives the recording session state machine
type ProximitySessionUsecase interface {
	StartProximitySession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ConfirmProximitySession moves PENDING_CONFIRMATION to IN_PROGRESS. From any other state
	// the session is returned unchanged together with an invalid-transition error.
	ConfirmProximitySession(ctx context.Context, sessionID uuid.UUID) (*entity.ProximityRecordingSession, error)

	// DeclineProximitySession cancels a pending session with the given reason. From any other
	// state the session is returned unchanged together with an invalid-transition error.
	DeclineProximitySession(ctx context.Context, sessionID uuid.UUID, reason entity.CancelReason) (*entity.ProximityRecordingSession, error)

	// FinishProximitySession completes an IN_PROGRESS session. Finishing a terminal session
	// returns it unchanged without error.
	FinishProximitySession(ctx context.Context, input *FinishSessionInput) (*entity.ProximityRecordingSession, error)

	LinkExternalRecording(ctx context.Context, sessionID uuid.UUID, recordingID string) (*entity.ProximityRecordingSession, error)

	ListProximitySessions(ctx context.Context, vendorID uuid.UUID, states []entity.SessionState) ([]*entity.ProximityRecordingSession, error)
	GetProximitySession(ctx context.Context, sessionID uuid.UUID) (*entity.ProximityRecordingSession, error)

	// GetActiveSession returns the vendor's open session, or nil when there is none
	GetActiveSession(ctx context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error)
}
