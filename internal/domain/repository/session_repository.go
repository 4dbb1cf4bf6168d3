package repository

import (
	"context"

	"proximity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrOpenSessionExists is returned when inserting would give a vendor a second open session.
	ErrOpenSessionExists = errors.New("vendor already has an open session")
	// ErrSessionStateChanged is returned when a compare-and-set update finds a different state.
	ErrSessionStateChanged = errors.New("session state changed concurrently")
)

// SessionRepository defines the interface for recording session persistence.
// Sessions are never deleted.
type SessionRepository interface {
	// CreateSession inserts a new session. The store guarantees at most one open
	// session per vendor and returns ErrOpenSessionExists otherwise.
	CreateSession(ctx context.Context, session *entity.ProximityRecordingSession) error

	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ProximityRecordingSession, error)

	// FindOpenSessionByVendor returns ErrSessionNotFound when the vendor has no open session.
	FindOpenSessionByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error)

	// ListSessionsByVendor returns sessions newest first; empty states means all states.
	ListSessionsByVendor(ctx context.Context, vendorID uuid.UUID, states []entity.SessionState) ([]*entity.ProximityRecordingSession, error)

	// UpdateSessionIfState writes the session only while the stored state equals expected.
	// It returns ErrSessionStateChanged when another writer got there first.
	UpdateSessionIfState(ctx context.Context, session *entity.ProximityRecordingSession, expected entity.SessionState) error

	// FindLatestSessionByZone returns the newest session referencing the zone, restricted to
	// states when given. It returns ErrSessionNotFound when none exists.
	FindLatestSessionByZone(ctx context.Context, zoneID uuid.UUID, states []entity.SessionState) (*entity.ProximityRecordingSession, error)
}
