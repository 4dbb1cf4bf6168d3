package postgres

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func zoneColumns() []string {
	return []string{
		"id", "owner_id", "name", "description", "category", "latitude", "longitude", "radius_meters",
		"activation_enabled", "schedule", "timezone", "is_active", "created_at", "updated_at", "deleted_at",
	}
}

func TestZoneRepository_FindZoneByID_MalformedSchedule(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewZoneRepository(db, slog.New(slog.DiscardHandler))

	zoneID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(zoneColumns()).
		AddRow(zoneID.String(), uuid.New().String(), "Showroom", "", "showroom", 19.4326, -99.1332, 50.0,
			true, []byte(`{"weekdays": "mon-fri"}`), "UTC", true, now, now, nil)

	mock.ExpectQuery(`SELECT \* FROM "proximity_zones" WHERE id = \$1 AND deleted_at IS NULL`).
		WillReturnRows(rows)

	zone, err := repo.FindZoneByID(context.Background(), zoneID)
	require.NoError(t, err)
	assert.True(t, zone.ScheduleMalformed)
	assert.Nil(t, zone.Schedule)
	assert.True(t, geo.IsZoneActiveAt(zone, time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_FindZoneByID_Schedule(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewZoneRepository(db, nil)

	zoneID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(zoneColumns()).
		AddRow(zoneID.String(), uuid.New().String(), "Showroom", "", "showroom", 19.4326, -99.1332, 50.0,
			true, []byte(`{"weekdays":[1,2,3,4,5],"windows":[{"start":540,"end":1080}]}`), "UTC", true, now, now, nil)

	mock.ExpectQuery(`SELECT \* FROM "proximity_zones"`).WillReturnRows(rows)

	zone, err := repo.FindZoneByID(context.Background(), zoneID)
	require.NoError(t, err)
	assert.False(t, zone.ScheduleMalformed)
	require.NotNil(t, zone.Schedule)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, zone.Schedule.Weekdays)
	assert.Equal(t, []entity.TimeWindow{{Start: 540, End: 1080}}, zone.Schedule.Windows)
}

func TestZoneRepository_FindZoneByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewZoneRepository(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "proximity_zones"`).
		WillReturnRows(sqlmock.NewRows(zoneColumns()))

	_, err := repo.FindZoneByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrZoneNotFound)
}

func TestZoneRepository_FindActiveZonesInBound_Antimeridian(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewZoneRepository(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "proximity_zones" WHERE .*latitude BETWEEN .*\(longitude >= \$\d+ OR longitude <= \$\d+\)`).
		WillReturnRows(sqlmock.NewRows(zoneColumns()))

	bound := geo.SearchBound(entity.Position{Latitude: 0, Longitude: 179.99}, 10000)
	zones, err := repo.FindActiveZonesInBound(context.Background(), bound)
	require.NoError(t, err)
	assert.Empty(t, zones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_LockOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewZoneRepository(db, nil)

	ownerID := uuid.New()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1, \$2\)`).
		WithArgs(zoneLockNamespace, ownerLockKey(ownerID)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.LockOwner(context.Background(), ownerID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_UpdateSessionIfState_StateChanged(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSessionRepository(db)

	session := &entity.ProximityRecordingSession{
		ID:       uuid.New(),
		VendorID: uuid.New(),
		ZoneID:   uuid.New(),
		State:    entity.SessionStateCompleted,
	}

	mock.ExpectExec(`UPDATE "proximity_recording_sessions" SET .* WHERE .*id = \$\d+ AND state = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "proximity_recording_sessions" WHERE id = \$1`).
		WithArgs(session.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.UpdateSessionIfState(context.Background(), session, entity.SessionStateInProgress)
	assert.ErrorIs(t, err, repository.ErrSessionStateChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_UpdateSessionIfState_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "proximity_recording_sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "proximity_recording_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.UpdateSessionIfState(context.Background(), &entity.ProximityRecordingSession{ID: uuid.New()}, entity.SessionStateInProgress)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_UpdateSessionIfState_Applied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "proximity_recording_sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSessionIfState(context.Background(), &entity.ProximityRecordingSession{
		ID:    uuid.New(),
		State: entity.SessionStateInProgress,
	}, entity.SessionStatePendingConfirmation)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CreateSession_OpenSessionExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`INSERT INTO "proximity_recording_sessions"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "uq_proximity_sessions_open_vendor" (SQLSTATE 23505)`))

	err := repo.CreateSession(context.Background(), &entity.ProximityRecordingSession{
		ID:       uuid.New(),
		VendorID: uuid.New(),
		ZoneID:   uuid.New(),
		State:    entity.SessionStateInitiated,
		Config:   entity.DefaultConfigSnapshot(),
	})
	assert.ErrorIs(t, err, repository.ErrOpenSessionExists)
}

func TestSessionMapper_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	seconds := int64(42)
	distance := 61.5
	reason := entity.FinishReasonZoneExit
	session := &entity.ProximityRecordingSession{
		ID:                  uuid.New(),
		VendorID:            uuid.New(),
		ZoneID:              uuid.New(),
		Config:              entity.DefaultConfigSnapshot(),
		EntryPosition:       entity.Position{Latitude: 19.4326, Longitude: -99.1332, AccuracyMeters: 8, Timestamp: now},
		ExitPosition:        &entity.Position{Latitude: 19.4332, Longitude: -99.1332, AccuracyMeters: 12, Timestamp: now.Add(42 * time.Second)},
		State:               entity.SessionStateCompleted,
		ActivationType:      entity.ActivationAutomatic,
		ExitDistanceMeters:  &distance,
		TimeInZoneSeconds:   &seconds,
		FinishReason:        &reason,
		DeviceInfo:          map[string]any{"os": "android"},
		CreatedAt:           now,
		UpdatedAt:           now,
		EntryDistanceMeters: 3.2,
	}

	sessionM, err := fromSessionDomain(session)
	require.NoError(t, err)

	back, err := toSessionDomain(sessionM)
	require.NoError(t, err)
	assert.Equal(t, session, back)
}

func TestEventLogRepository_ListEvents(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventLogRepository(db)

	vendorID := uuid.New()
	sessionID := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "seq", "type", "vendor_id", "session_id", "latitude", "longitude", "metadata", "occurred_at", "created_at"}).
		AddRow(uuid.New().String(), 1, "entrada_zona", vendorID.String(), sessionID.String(), 19.4326, -99.1332, nil, now, now).
		AddRow(uuid.New().String(), 2, "grabacion_finalizada", vendorID.String(), sessionID.String(), nil, nil, []byte(`{"reason":"zone_exit"}`), now, now)

	mock.ExpectQuery(`SELECT \* FROM "proximity_events" WHERE session_id = \$1 ORDER BY occurred_at, seq`).
		WithArgs(sessionID).
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), entity.EventFilter{SessionID: &sessionID})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventTypeZoneEntry, events[0].Type)
	require.NotNil(t, events[0].Position)
	assert.Nil(t, events[1].Position)
	assert.Equal(t, "zone_exit", events[1].Metadata["reason"])
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db, nil)

	ownerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewZoneRepository().LockOwner(context.Background(), ownerID)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
