package postgres

import (
	"context"
	"encoding/json"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession inserts a new session. The partial unique index on open
// states turns a second open session for the vendor into ErrOpenSessionExists.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.ProximityRecordingSession) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if violatesConstraint(err, openSessionIndex) {
			return repository.ErrOpenSessionExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindSessionByID retrieves a session by its ID.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ProximityRecordingSession, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindOpenSessionByVendor returns the vendor's open session.
func (repo *sessionRepository) FindOpenSessionByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).
		Where("vendor_id = ? AND state IN ?", vendorID, stateStrings(entity.OpenSessionStates)))
}

// ListSessionsByVendor returns sessions newest first.
func (repo *sessionRepository) ListSessionsByVendor(ctx context.Context, vendorID uuid.UUID, states []entity.SessionState) ([]*entity.ProximityRecordingSession, error) {
	query := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if len(states) > 0 {
		query = query.Where("state IN ?", stateStrings(states))
	}

	var sessionModels []*model.ProximitySessionModel
	if err := query.Order("created_at DESC").Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*entity.ProximityRecordingSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		session, err := toSessionDomain(sessionM)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// UpdateSessionIfState writes the session only while the stored state equals expected.
func (repo *sessionRepository) UpdateSessionIfState(ctx context.Context, session *entity.ProximityRecordingSession, expected entity.SessionState) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProximitySessionModel{}).
		Where("id = ? AND state = ?", session.ID, string(expected)).
		Select("state", "activation_type", "exit_latitude", "exit_longitude", "exit_accuracy", "exit_at",
			"exit_distance_meters", "time_in_zone_seconds", "recording_id", "finish_reason",
			"termination_reason", "started_at", "ended_at", "updated_at").
		Updates(sessionM)
	if result.Error != nil {
		if violatesConstraint(result.Error, openSessionIndex) {
			return repository.ErrOpenSessionExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProximitySessionModel{}).
		Where("id = ?", session.ID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check session existence")
	}
	if count == 0 {
		return repository.ErrSessionNotFound
	}

	return repository.ErrSessionStateChanged
}

// FindLatestSessionByZone returns the newest session referencing the zone.
func (repo *sessionRepository) FindLatestSessionByZone(ctx context.Context, zoneID uuid.UUID, states []entity.SessionState) (*entity.ProximityRecordingSession, error) {
	query := repo.db.WithContext(ctx).Where("zone_id = ?", zoneID)
	if len(states) > 0 {
		query = query.Where("state IN ?", stateStrings(states))
	}

	return repo.findOne(ctx, query.Order("created_at DESC"))
}

func (repo *sessionRepository) findOne(_ context.Context, query *gorm.DB) (*entity.ProximityRecordingSession, error) {
	var sessionM model.ProximitySessionModel
	if err := query.First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM)
}

func stateStrings(states []entity.SessionState) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, string(s))
	}

	return out
}

// --- Mapper Functions ---

func toSessionDomain(data *model.ProximitySessionModel) (*entity.ProximityRecordingSession, error) {
	session := &entity.ProximityRecordingSession{
		ID:         data.ID,
		VendorID:   data.VendorID,
		ZoneID:     data.ZoneID,
		ProspectID: data.ProspectID,
		EntryPosition: entity.Position{
			Latitude:       data.EntryLatitude,
			Longitude:      data.EntryLongitude,
			AccuracyMeters: data.EntryAccuracy,
			Timestamp:      data.EntryAt,
		},
		State:               entity.SessionState(data.State),
		ActivationType:      entity.ActivationType(data.ActivationType),
		EntryDistanceMeters: data.EntryDistanceMeters,
		ExitDistanceMeters:  data.ExitDistanceMeters,
		TimeInZoneSeconds:   data.TimeInZoneSeconds,
		RecordingID:         data.RecordingID,
		TerminationReason:   data.TerminationReason,
		StartedAt:           data.StartedAt,
		EndedAt:             data.EndedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if err := json.Unmarshal(data.Config, &session.Config); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config snapshot of session %s", data.ID)
	}
	if len(data.DeviceInfo) > 0 {
		if err := json.Unmarshal(data.DeviceInfo, &session.DeviceInfo); err != nil {
			return nil, errors.Wrapf(err, "failed to decode device info of session %s", data.ID)
		}
	}
	if data.ExitLatitude != nil && data.ExitLongitude != nil {
		exit := entity.Position{Latitude: *data.ExitLatitude, Longitude: *data.ExitLongitude}
		if data.ExitAccuracy != nil {
			exit.AccuracyMeters = *data.ExitAccuracy
		}
		if data.ExitAt != nil {
			exit.Timestamp = *data.ExitAt
		}
		session.ExitPosition = &exit
	}
	if data.FinishReason != nil {
		reason := entity.FinishReason(*data.FinishReason)
		session.FinishReason = &reason
	}

	return session, nil
}

func fromSessionDomain(data *entity.ProximityRecordingSession) (*model.ProximitySessionModel, error) {
	config, err := json.Marshal(data.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config snapshot")
	}

	sessionM := &model.ProximitySessionModel{
		ID:                  data.ID,
		VendorID:            data.VendorID,
		ZoneID:              data.ZoneID,
		ProspectID:          data.ProspectID,
		Config:              datatypes.JSON(config),
		EntryLatitude:       data.EntryPosition.Latitude,
		EntryLongitude:      data.EntryPosition.Longitude,
		EntryAccuracy:       data.EntryPosition.AccuracyMeters,
		EntryAt:             data.EntryPosition.Timestamp,
		State:               string(data.State),
		ActivationType:      string(data.ActivationType),
		EntryDistanceMeters: data.EntryDistanceMeters,
		ExitDistanceMeters:  data.ExitDistanceMeters,
		TimeInZoneSeconds:   data.TimeInZoneSeconds,
		RecordingID:         data.RecordingID,
		TerminationReason:   data.TerminationReason,
		StartedAt:           data.StartedAt,
		EndedAt:             data.EndedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if len(data.DeviceInfo) > 0 {
		info, err := json.Marshal(data.DeviceInfo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode device info")
		}
		sessionM.DeviceInfo = datatypes.JSON(info)
	}
	if data.ExitPosition != nil {
		exit := *data.ExitPosition
		sessionM.ExitLatitude = &exit.Latitude
		sessionM.ExitLongitude = &exit.Longitude
		sessionM.ExitAccuracy = &exit.AccuracyMeters
		sessionM.ExitAt = &exit.Timestamp
	}
	if data.FinishReason != nil {
		reason := string(*data.FinishReason)
		sessionM.FinishReason = &reason
	}

	return sessionM, nil
}
