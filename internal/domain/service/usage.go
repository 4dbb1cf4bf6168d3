package service

import (
	"context"

	"github.com/google/uuid"
)

// UsageDecision is the gate's answer for one start attempt.
type UsageDecision struct {
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"`
	Reason    string `json:"reason,omitempty"`
}

// UsageGate is consulted before a session start mutates anything.
type UsageGate interface {
	CheckRecordingQuota(ctx context.Context, vendorID uuid.UUID) (*UsageDecision, error)
}

// UsageRecord reports one linked recording to the usage service.
type UsageRecord struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	SessionID   uuid.UUID `json:"session_id"`
	RecordingID string    `json:"recording_id"`
	Seconds     int64     `json:"seconds"`
}

// UsageRecorder is invoked after an external recording is linked to a session.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, record *UsageRecord) error
}
