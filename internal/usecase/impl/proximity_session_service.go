package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/repository"
	"proximity/internal/domain/service"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type proximitySessionService struct {
	txManager     repository.TransactionManager
	sessionRepo   repository.SessionRepository
	zones         usecase.ZoneUsecase
	configs       usecase.VendorConfigUsecase
	usageGate     service.UsageGate
	usageRecorder service.UsageRecorder
	publisher     service.EventPublisher
	nearbyMeters  float64
	nearbyLimit   int
	logger        *slog.Logger
	now           func() time.Time
}

// ProximitySessionServiceParams holds dependencies for ProximitySessionService, injected by Fx.
type ProximitySessionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	SessionRepo   repository.SessionRepository
	Zones         usecase.ZoneUsecase
	Configs       usecase.VendorConfigUsecase
	UsageGate     service.UsageGate      `optional:"true"`
	UsageRecorder service.UsageRecorder  `optional:"true"`
	Publisher     service.EventPublisher `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewProximitySessionService creates the recording session state machine
func NewProximitySessionService(params ProximitySessionServiceParams) usecase.ProximitySessionUsecase {
	nearbyMeters := 1000.0
	nearbyLimit := 5
	if params.Config != nil && params.Config.Proximity != nil {
		if params.Config.Proximity.NearbySearchMeters > 0 {
			nearbyMeters = params.Config.Proximity.NearbySearchMeters
		}
		if params.Config.Proximity.NearbyLimit > 0 {
			nearbyLimit = params.Config.Proximity.NearbyLimit
		}
	}

	return &proximitySessionService{
		txManager:     params.TxManager,
		sessionRepo:   params.SessionRepo,
		zones:         params.Zones,
		configs:       params.Configs,
		usageGate:     params.UsageGate,
		usageRecorder: params.UsageRecorder,
		publisher:     params.Publisher,
		nearbyMeters:  nearbyMeters,
		nearbyLimit:   nearbyLimit,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *proximitySessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// StartProximitySession matches the position to a zone and opens a session in it.
// A position outside every eligible zone is not an error: the output reports
// Created=false with nearby-zone diagnostics.
func (s *proximitySessionService) StartProximitySession(ctx context.Context, input *usecase.StartSessionInput) (*usecase.StartSessionOutput, error) {
	if err := validateStartInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	position := input.Position
	if position.Timestamp.IsZero() {
		position.Timestamp = now
	}
	activation := input.ActivationType
	if activation == "" {
		activation = entity.ActivationAutomatic
	}

	// The search box must cover the largest possible zone radius.
	searchMeters := max(s.nearbyMeters, entity.MaxZoneRadiusMeters)
	candidates, err := s.zones.FindCandidateZones(ctx, position, searchMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate zones")
	}

	match, ok := geo.MatchZone(position, candidates, now)
	if !ok {
		return &usecase.StartSessionOutput{
			Created:     false,
			NearbyZones: geo.NearbyZones(position, candidates, s.nearbyMeters, s.nearbyLimit),
		}, nil
	}

	if open, err := s.sessionRepo.FindOpenSessionByVendor(ctx, input.VendorID); err == nil {
		return nil, domainerrors.NewSessionAlreadyActiveError(open.ID)
	} else if !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(err, "failed to check open session")
	}

	snapshot, err := s.configs.ResolveConfig(ctx, input.VendorID, match.Zone.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve vendor config")
	}
	if !snapshot.MonitoringEnabled {
		return nil, domainerrors.ErrMonitoringDisabled
	}

	if err := s.checkQuota(ctx, input.VendorID); err != nil {
		return nil, err
	}

	requiresConfirmation := snapshot.ConfirmBeforeStart && activation == entity.ActivationAutomatic
	session := &entity.ProximityRecordingSession{
		ID:                  uuid.New(),
		VendorID:            input.VendorID,
		ZoneID:              match.Zone.ID,
		ProspectID:          input.ProspectID,
		Config:              snapshot,
		EntryPosition:       position,
		State:               entity.SessionStateInitiated,
		ActivationType:      activation,
		EntryDistanceMeters: match.DistanceMeters,
		DeviceInfo:          input.DeviceInfo,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var logged []*entity.ProximityEvent
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()
		eventRepo := repoFactory.NewEventLogRepository()

		if err := sessionRepo.CreateSession(ctx, session); err != nil {
			return err
		}

		entry := newSessionEvent(entity.EventTypeZoneEntry, session, &position, match.Zone, now)
		if err := eventRepo.AppendEvent(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append zone entry event")
		}
		logged = append(logged, entry)

		if requiresConfirmation {
			session.State = entity.SessionStatePendingConfirmation
			session.UpdatedAt = now

			return errors.Wrap(sessionRepo.UpdateSessionIfState(ctx, session, entity.SessionStateInitiated), "failed to request confirmation")
		}

		session.State = entity.SessionStateInProgress
		session.StartedAt = &now
		session.UpdatedAt = now
		if err := sessionRepo.UpdateSessionIfState(ctx, session, entity.SessionStateInitiated); err != nil {
			return errors.Wrap(err, "failed to start recording")
		}

		started := newSessionEvent(entity.EventTypeRecordingStarted, session, &position, match.Zone, now)
		if err := eventRepo.AppendEvent(ctx, started); err != nil {
			return errors.Wrap(err, "failed to append recording started event")
		}
		logged = append(logged, started)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOpenSessionExists) {
			return nil, s.openSessionConflict(ctx, input.VendorID, err)
		}

		return nil, errors.Wrap(err, "failed to start proximity session")
	}

	publishEvents(ctx, s.publisher, s.log(ctx), session.State, logged...)

	s.log(ctx).Info("Proximity session started",
		slog.String("session_id", session.ID.String()),
		slog.String("vendor_id", session.VendorID.String()),
		slog.String("zone_id", session.ZoneID.String()),
		slog.String("state", string(session.State)),
		slog.String("activation", string(session.ActivationType)),
		slog.Float64("distance_m", geo.RoundMeters(match.DistanceMeters)))

	return &usecase.StartSessionOutput{
		Created:              true,
		Session:              session,
		Zone:                 match.Zone,
		RequiresConfirmation: requiresConfirmation,
	}, nil
}

// ConfirmProximitySession moves a pending session into recording
func (s *proximitySessionService) ConfirmProximitySession(ctx context.Context, sessionID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	return s.resolvePending(ctx, sessionID, "confirm", func(session *entity.ProximityRecordingSession, now time.Time) {
		session.State = entity.SessionStateInProgress
		session.ActivationType = entity.ActivationConfirmed
		session.StartedAt = &now
	})
}

// DeclineProximitySession cancels a pending session
func (s *proximitySessionService) DeclineProximitySession(ctx context.Context, sessionID uuid.UUID, reason entity.CancelReason) (*entity.ProximityRecordingSession, error) {
	if reason == "" {
		reason = entity.CancelReasonUserDeclined
	}
	if !reason.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown cancel reason")
	}

	return s.resolvePending(ctx, sessionID, "decline", func(session *entity.ProximityRecordingSession, now time.Time) {
		session.State = entity.SessionStateCancelled
		session.TerminationReason = string(reason)
		session.EndedAt = &now
	})
}

// resolvePending applies a transition that is only legal from PENDING_CONFIRMATION.
// Any other state yields the current session together with an invalid-transition error.
func (s *proximitySessionService) resolvePending(
	ctx context.Context,
	sessionID uuid.UUID,
	op string,
	transition func(session *entity.ProximityRecordingSession, now time.Time),
) (*entity.ProximityRecordingSession, error) {
	var (
		result *entity.ProximityRecordingSession
		logged []*entity.ProximityEvent
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := s.findSession(ctx, sessionRepo, sessionID)
		if err != nil {
			return err
		}
		result = session

		if session.State != entity.SessionStatePendingConfirmation {
			return invalidTransition(op, session.State)
		}

		now := s.now()
		next := session.Clone()
		transition(next, now)
		next.UpdatedAt = now

		if err := sessionRepo.UpdateSessionIfState(ctx, next, entity.SessionStatePendingConfirmation); err != nil {
			return err
		}
		result = next

		if next.State == entity.SessionStateInProgress {
			started := newSessionEvent(entity.EventTypeRecordingStarted, next, &next.EntryPosition, nil, now)
			if err := repoFactory.NewEventLogRepository().AppendEvent(ctx, started); err != nil {
				return errors.Wrap(err, "failed to append recording started event")
			}
			logged = append(logged, started)
		}

		return nil
	})

	if errors.Is(err, repository.ErrSessionStateChanged) {
		current, findErr := s.findSession(ctx, s.sessionRepo, sessionID)
		if findErr != nil {
			return nil, findErr
		}

		return current, invalidTransition(op, current.State)
	}
	if domainerrors.HasCode(err, domainerrors.ErrInvalidTransition.ErrorCode()) {
		return result, err
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s proximity session", op)
	}

	publishEvents(ctx, s.publisher, s.log(ctx), result.State, logged...)

	s.log(ctx).Info("Pending proximity session resolved",
		slog.String("op", op),
		slog.String("session_id", result.ID.String()),
		slog.String("state", string(result.State)))

	return result, nil
}

// FinishProximitySession completes an in-progress session. A terminal session is
// returned unchanged so that racing finishers converge on one result.
func (s *proximitySessionService) FinishProximitySession(ctx context.Context, input *usecase.FinishSessionInput) (*entity.ProximityRecordingSession, error) {
	if input == nil || !input.Reason.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("finish reason must be zone_exit, manual_stop, max_duration_exceeded or system_stop")
	}
	if input.ExitPosition != nil && !input.ExitPosition.HasValidCoordinates() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("exit position out of range")
	}

	var (
		result   *entity.ProximityRecordingSession
		logged   []*entity.ProximityEvent
		finished bool
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := s.findSession(ctx, sessionRepo, input.SessionID)
		if err != nil {
			return err
		}
		result = session

		if session.State.IsTerminal() {
			return nil
		}
		if session.State != entity.SessionStateInProgress {
			return invalidTransition("finish", session.State)
		}

		zone, err := repoFactory.NewZoneRepository().FindZoneByID(ctx, session.ZoneID)
		if err != nil && !errors.Is(err, repository.ErrZoneNotFound) {
			return errors.Wrap(err, "failed to load session zone")
		}

		now := s.now()
		next := session.Clone()
		applyFinish(next, input, zone, now)

		if err := sessionRepo.UpdateSessionIfState(ctx, next, entity.SessionStateInProgress); err != nil {
			return err
		}
		result = next
		finished = true

		eventRepo := repoFactory.NewEventLogRepository()
		if next.ExitPosition != nil {
			exit := newSessionEvent(entity.EventTypeZoneExit, next, next.ExitPosition, zone, now)
			if err := eventRepo.AppendEvent(ctx, exit); err != nil {
				return errors.Wrap(err, "failed to append zone exit event")
			}
			logged = append(logged, exit)
		}

		done := newSessionEvent(entity.EventTypeRecordingFinished, next, next.ExitPosition, zone, now)
		done.Metadata = map[string]any{
			"reason":               string(input.Reason),
			"time_in_zone_seconds": *next.TimeInZoneSeconds,
		}
		if err := eventRepo.AppendEvent(ctx, done); err != nil {
			return errors.Wrap(err, "failed to append recording finished event")
		}
		logged = append(logged, done)

		return nil
	})

	if errors.Is(err, repository.ErrSessionStateChanged) {
		current, findErr := s.findSession(ctx, s.sessionRepo, input.SessionID)
		if findErr != nil {
			return nil, findErr
		}
		if current.State.IsTerminal() {
			return current, nil
		}

		return current, invalidTransition("finish", current.State)
	}
	if domainerrors.HasCode(err, domainerrors.ErrInvalidTransition.ErrorCode()) {
		return result, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to finish proximity session")
	}

	if !finished {
		return result, nil
	}

	publishEvents(ctx, s.publisher, s.log(ctx), result.State, logged...)

	s.log(ctx).Info("Proximity session finished",
		slog.String("session_id", result.ID.String()),
		slog.String("reason", string(input.Reason)),
		slog.Int64("time_in_zone_s", *result.TimeInZoneSeconds))

	if result.RecordingID != nil {
		s.recordUsage(ctx, result)
	}

	return result, nil
}

// LinkExternalRecording attaches the external conversation recording to a session
func (s *proximitySessionService) LinkExternalRecording(ctx context.Context, sessionID uuid.UUID, recordingID string) (*entity.ProximityRecordingSession, error) {
	if recordingID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recording_id is required")
	}

	var (
		result  *entity.ProximityRecordingSession
		changed bool
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := s.findSession(ctx, sessionRepo, sessionID)
		if err != nil {
			return err
		}
		result = session

		if session.State != entity.SessionStateInProgress && session.State != entity.SessionStateCompleted {
			return invalidTransition("link recording", session.State)
		}
		if session.RecordingID != nil && *session.RecordingID == recordingID {
			return nil
		}

		next := session.Clone()
		next.RecordingID = &recordingID
		next.UpdatedAt = s.now()
		if err := sessionRepo.UpdateSessionIfState(ctx, next, session.State); err != nil {
			return err
		}
		result = next
		changed = true

		return nil
	})

	if errors.Is(err, repository.ErrSessionStateChanged) {
		// The session moved between IN_PROGRESS and COMPLETED; try once more on fresh state.
		return s.LinkExternalRecording(ctx, sessionID, recordingID)
	}
	if domainerrors.HasCode(err, domainerrors.ErrInvalidTransition.ErrorCode()) {
		return result, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to link external recording")
	}

	if changed {
		s.recordUsage(ctx, result)
	}

	return result, nil
}

// ListProximitySessions lists a vendor's sessions, optionally filtered by state
func (s *proximitySessionService) ListProximitySessions(ctx context.Context, vendorID uuid.UUID, states []entity.SessionState) ([]*entity.ProximityRecordingSession, error) {
	for _, state := range states {
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown session state " + string(state))
		}
	}

	sessions, err := s.sessionRepo.ListSessionsByVendor(ctx, vendorID, states)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// GetProximitySession retrieves a session by ID
func (s *proximitySessionService) GetProximitySession(ctx context.Context, sessionID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	return s.findSession(ctx, s.sessionRepo, sessionID)
}

// GetActiveSession returns the vendor's open session or nil
func (s *proximitySessionService) GetActiveSession(ctx context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	session, err := s.sessionRepo.FindOpenSessionByVendor(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find open session")
	}

	return session, nil
}

func (s *proximitySessionService) findSession(ctx context.Context, sessionRepo repository.SessionRepository, sessionID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	session, err := sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

func (s *proximitySessionService) checkQuota(ctx context.Context, vendorID uuid.UUID) error {
	if s.usageGate == nil {
		return nil
	}

	decision, err := s.usageGate.CheckRecordingQuota(ctx, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to check recording quota")
	}
	if !decision.Allowed {
		if decision.Reason != "" {
			return domainerrors.ErrQuotaDenied.WithDetails(decision.Reason)
		}

		return domainerrors.ErrQuotaDenied
	}

	return nil
}

func (s *proximitySessionService) recordUsage(ctx context.Context, session *entity.ProximityRecordingSession) {
	if s.usageRecorder == nil || session.RecordingID == nil {
		return
	}

	record := &service.UsageRecord{
		VendorID:    session.VendorID,
		SessionID:   session.ID,
		RecordingID: *session.RecordingID,
	}
	if session.TimeInZoneSeconds != nil {
		record.Seconds = *session.TimeInZoneSeconds
	}

	if err := s.usageRecorder.RecordUsage(ctx, record); err != nil {
		s.log(ctx).Warn("Failed to record recording usage",
			slog.String("session_id", session.ID.String()),
			slog.Any("error", err))
	}
}

// openSessionConflict converts a lost insert race into a conflict naming the winner.
func (s *proximitySessionService) openSessionConflict(ctx context.Context, vendorID uuid.UUID, cause error) error {
	open, err := s.sessionRepo.FindOpenSessionByVendor(ctx, vendorID)
	if err != nil {
		return errors.Wrap(cause, "open session exists but could not be loaded")
	}

	return domainerrors.NewSessionAlreadyActiveError(open.ID)
}

func validateStartInput(input *usecase.StartSessionInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("start input is required")
	case input.VendorID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WithDetails("vendor_id is required")
	case !input.Position.HasValidCoordinates():
		return domainerrors.ErrValidationFailed.WithDetails("position out of range")
	case input.Position.AccuracyMeters < 0:
		return domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	case input.ActivationType != "" && !input.ActivationType.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown activation type")
	}

	return nil
}

func applyFinish(session *entity.ProximityRecordingSession, input *usecase.FinishSessionInput, zone *entity.ProximityZone, now time.Time) {
	exitAt := now
	if input.ExitPosition != nil {
		exit := *input.ExitPosition
		if exit.Timestamp.IsZero() {
			exit.Timestamp = now
		}
		exitAt = exit.Timestamp
		session.ExitPosition = &exit

		if zone != nil {
			d := geo.DistanceToZone(exit, zone)
			session.ExitDistanceMeters = &d
		}
	}

	seconds := int64(exitAt.Sub(session.EntryPosition.Timestamp) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	session.TimeInZoneSeconds = &seconds

	reason := input.Reason
	session.FinishReason = &reason
	if reason.IsAbnormal() {
		session.TerminationReason = string(reason)
	}
	if input.LinkedRecordingID != nil && *input.LinkedRecordingID != "" {
		recordingID := *input.LinkedRecordingID
		session.RecordingID = &recordingID
	}

	session.State = entity.SessionStateCompleted
	session.EndedAt = &now
	session.UpdatedAt = now
}

func newSessionEvent(
	eventType entity.EventType,
	session *entity.ProximityRecordingSession,
	position *entity.Position,
	zone *entity.ProximityZone,
	now time.Time,
) *entity.ProximityEvent {
	sessionID := session.ID
	zoneID := session.ZoneID
	event := &entity.ProximityEvent{
		ID:         uuid.New(),
		Type:       eventType,
		VendorID:   session.VendorID,
		ZoneID:     &zoneID,
		SessionID:  &sessionID,
		OccurredAt: now,
		CreatedAt:  now,
	}

	if position != nil {
		p := *position
		event.Position = &p
		score := geo.ConfidenceScore(p, zone)
		event.ConfidenceScore = &score
	}

	return event
}

func invalidTransition(op string, state entity.SessionState) error {
	return domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("cannot %s a session in state %s", op, state))
}
