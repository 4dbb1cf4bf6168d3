package monitor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/lifecycle"
	"proximity/internal/domain/service"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const updateBuffer = 16

// ErrAlreadyRunning is returned by Start on a running monitor.
var ErrAlreadyRunning = errors.New("monitor is already running")

// tracked is the monitor's view of the vendor's open session. Values are
// immutable once stored in the slot; a transition stores a new value.
type tracked struct {
	session    *entity.ProximityRecordingSession
	zone       *entity.ProximityZone
	promptedAt time.Time
}

// Settings are the monitor's timing knobs.
type Settings struct {
	CheckInterval       time.Duration
	StalePositionAfter  time.Duration
	MaxSessionDuration  time.Duration
	ConfirmationTimeout time.Duration
	DeliveryGracePeriod time.Duration
	FlushBatchSize      int
}

// SettingsFromConfig reads the monitor section of the config.
func SettingsFromConfig(cfg *config.MonitorConfig) Settings {
	return Settings{
		CheckInterval:       cfg.CheckInterval,
		StalePositionAfter:  cfg.StalePositionAfter,
		MaxSessionDuration:  cfg.MaxSessionDuration,
		ConfirmationTimeout: cfg.ConfirmationTimeout,
		DeliveryGracePeriod: cfg.DeliveryGracePeriod,
		FlushBatchSize:      cfg.FlushBatchSize,
	}
}

// Monitor watches one vendor's device position and drives its recording sessions.
//
// Position updates, confirmation answers and the periodic check are consumed by a
// single loop goroutine. The current session lives in an atomic slot; every
// transition is published with a compare-and-swap against the value it was
// computed from, so readers never see a torn update and a stale transition
// never overwrites a newer one.
type Monitor struct {
	vendorID uuid.UUID
	settings Settings

	sessions  usecase.ProximitySessionUsecase
	zones     usecase.ZoneUsecase
	events    usecase.EventLogUsecase
	devices   usecase.DeviceUsecase
	positions service.PositionSource
	answers   service.ConfirmationSource
	relay     service.ForegroundRelay
	outbox    service.EventOutbox
	cache     service.PositionCache
	notifier  service.NotificationService
	logger    *slog.Logger

	now         func() time.Time
	newTicker   func(time.Duration) (<-chan time.Time, func())
	callTimeout time.Duration

	current  atomic.Pointer[tracked]
	sequence atomic.Uint64

	mu             sync.Mutex
	running        bool
	cancel         context.CancelFunc
	done           chan struct{}
	startedAt      time.Time
	lastPosition   *entity.Position
	lastPositionAt time.Time
	gpsErrorSince  time.Time
	gpsAlerted     bool
	backlog        bool
	deliveryAlert  bool

	notifications sync.WaitGroup
}

// Params holds dependencies for the monitor, injected by Fx.
type Params struct {
	fx.In

	Config    *config.Config
	Sessions  usecase.ProximitySessionUsecase
	Zones     usecase.ZoneUsecase
	Events    usecase.EventLogUsecase
	Devices   usecase.DeviceUsecase `optional:"true"`
	Positions service.PositionSource
	Answers   service.ConfirmationSource `optional:"true"`
	Relay     service.ForegroundRelay
	Outbox    service.EventOutbox
	Cache     service.PositionCache       `optional:"true"`
	Notifier  service.NotificationService `optional:"true"`
	Logger    *slog.Logger
}

// New creates a monitor for the vendor configured in monitor.vendorId.
func New(params Params) (*Monitor, error) {
	vendorID, err := uuid.Parse(params.Config.Monitor.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "monitor.vendorId must be a UUID")
	}

	return &Monitor{
		vendorID:  vendorID,
		settings:  SettingsFromConfig(params.Config.Monitor),
		sessions:  params.Sessions,
		zones:     params.Zones,
		events:    params.Events,
		devices:   params.Devices,
		positions: params.Positions,
		answers:   params.Answers,
		relay:     params.Relay,
		outbox:    params.Outbox,
		cache:     params.Cache,
		notifier:  params.Notifier,
		logger:    params.Logger.With(slog.String("vendor_id", vendorID.String())),
		now:       time.Now,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			ticker := time.NewTicker(d)

			return ticker.C, ticker.Stop
		},
		callTimeout: lifecycle.DefaultTimeout,
	}, nil
}

// bounded limits one outbound call made from the loop. A broker or database
// that stops answering costs one timeout, never the loop.
func (m *Monitor) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.callTimeout)
}

// VendorID returns the monitored vendor.
func (m *Monitor) VendorID() uuid.UUID {
	return m.vendorID
}

// Start adopts any open session, subscribes to the position stream and starts
// the loop. The loop outlives ctx; only Stop ends it.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()

		return ErrAlreadyRunning
	}
	m.running = true
	m.startedAt = m.now()
	m.mu.Unlock()

	m.resume(ctx)
	m.restorePosition(ctx)

	updates := make(chan service.PositionUpdate, updateBuffer)
	if err := m.positions.Subscribe(ctx, m.vendorID, updates); err != nil {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()

		return errors.Wrap(err, "failed to subscribe to position stream")
	}

	var answers chan service.ConfirmationAnswer
	if m.answers != nil {
		answers = make(chan service.ConfirmationAnswer, updateBuffer)
		if err := m.answers.SubscribeAnswers(ctx, m.vendorID, answers); err != nil {
			// Prompts still time out into a decline without an answer channel.
			m.logger.WarnContext(ctx, "Confirmation answers unavailable", slog.Any("error", err))
			answers = nil
		}
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	ticks, stopTicker := m.newTicker(m.settings.CheckInterval)
	done := make(chan struct{})

	m.mu.Lock()
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	go func() {
		defer close(done)
		defer stopTicker()
		m.loop(loopCtx, updates, answers, ticks)
	}()

	reqCtx, cancelReq := m.bounded(ctx)
	defer cancelReq()
	if err := m.positions.RequestPosition(reqCtx, m.vendorID); err != nil {
		m.logger.WarnContext(ctx, "Initial position request failed", slog.Any("error", err))
	}

	m.logger.InfoContext(ctx, "Monitor started", slog.Duration("check_interval", m.settings.CheckInterval))

	return nil
}

// Stop is the only way to end monitoring. It stops the loop, finishes an
// in-progress session with system_stop, cancels a pending one and releases the
// subscriptions. Calling Stop on a stopped monitor is a no-op.
func (m *Monitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.running || m.cancel == nil {
		m.mu.Unlock()

		return nil
	}
	cancel, done := m.cancel, m.done
	m.cancel = nil
	m.mu.Unlock()

	cancel()

	var stopErr error
	loopStopped := true
	select {
	case <-done:
	case <-ctx.Done():
		// The session must not outlive the monitor even when the loop is wedged.
		stopErr = errors.Wrap(ctx.Err(), "monitor loop did not stop")
		loopStopped = false
		m.logger.WarnContext(ctx, "Monitor loop did not stop in time, closing the session anyway")

		var cancelCleanup context.CancelFunc
		ctx, cancelCleanup = context.WithTimeout(context.WithoutCancel(ctx), m.callTimeout)
		defer cancelCleanup()
	}

	if cur := m.current.Load(); cur != nil {
		switch cur.session.State {
		case entity.SessionStateInProgress:
			m.finish(ctx, cur, entity.FinishReasonSystemStop, m.lastKnownPosition())
		case entity.SessionStatePendingConfirmation:
			m.decline(ctx, cur, entity.CancelReasonSystemStop)
		}
	}

	if err := m.positions.Unsubscribe(m.vendorID); err != nil && stopErr == nil {
		stopErr = errors.Wrap(err, "failed to release position stream")
	}
	if m.answers != nil {
		if err := m.answers.UnsubscribeAnswers(m.vendorID); err != nil {
			m.logger.WarnContext(ctx, "Failed to release confirmation answers", slog.Any("error", err))
		}
	}

	// A wedged loop may be flushing the same batch.
	if loopStopped {
		m.flush(ctx)
	}
	m.notifications.Wait()

	m.mu.Lock()
	m.running = false
	m.done = nil
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Monitor stopped")

	return stopErr
}

func (m *Monitor) loop(ctx context.Context, updates <-chan service.PositionUpdate, answers <-chan service.ConfirmationAnswer, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			m.handleUpdate(ctx, update)
		case answer := <-answers:
			m.handleAnswer(ctx, answer)
		case <-ticks:
			m.Check(ctx)
		}
	}
}

func (m *Monitor) handleUpdate(ctx context.Context, update service.PositionUpdate) {
	if update.Err != nil {
		m.handlePositionError(ctx, update.Err)

		return
	}

	position := update.Position
	m.recordPosition(ctx, position)

	cur := m.current.Load()
	switch {
	case cur == nil:
		m.tryStart(ctx, position)
	case cur.session.State == entity.SessionStateInProgress && cur.zone != nil && geo.HasExited(position, cur.zone):
		m.logger.InfoContext(ctx, "Vendor left the session zone",
			slog.String("session_id", cur.session.ID.String()),
			slog.Float64("distance_m", geo.RoundMeters(geo.DistanceToZone(position, cur.zone))))
		m.finish(ctx, cur, entity.FinishReasonZoneExit, &position)
	}
}

func (m *Monitor) tryStart(ctx context.Context, position entity.Position) {
	callCtx, cancel := m.bounded(ctx)
	out, err := m.sessions.StartProximitySession(callCtx, &usecase.StartSessionInput{
		VendorID:       m.vendorID,
		Position:       position,
		ActivationType: entity.ActivationAutomatic,
	})
	cancel()
	if err != nil {
		m.handleStartError(ctx, position, err)

		return
	}
	if !out.Created {
		return
	}

	next := &tracked{session: out.Session, zone: out.Zone}
	if out.RequiresConfirmation {
		next.promptedAt = m.now()
	}
	if !m.current.CompareAndSwap(nil, next) {
		m.logger.WarnContext(ctx, "Session slot changed during start",
			slog.String("session_id", out.Session.ID.String()))

		return
	}

	m.sendRelay(ctx, service.RelayKindTransition, out.Session, "")
	if out.RequiresConfirmation {
		m.sendRelay(ctx, service.RelayKindConfirmationRequest, out.Session, "")
		m.pushConfirmationPrompt(out.Session, out.Zone, position)
	} else {
		m.pushStarted(out.Session, out.Zone)
	}
}

func (m *Monitor) handleStartError(ctx context.Context, position entity.Position, err error) {
	if conflict, ok := domainerrors.AsConflict(err); ok && conflict.ErrorCode() == domainerrors.CodeSessionAlreadyActive {
		m.adopt(ctx, conflict.EntityID())

		return
	}

	outcome := ""
	switch {
	case errors.Is(err, domainerrors.ErrMonitoringDisabled):
		outcome = "monitoring_disabled"
	case errors.Is(err, domainerrors.ErrQuotaDenied):
		outcome = "quota_denied"
	default:
		m.logger.ErrorContext(ctx, "Failed to start proximity session", slog.Any("error", err))

		return
	}

	m.logger.InfoContext(ctx, "Zone detected without starting a session", slog.String("outcome", outcome))
	m.logEvent(ctx, &entity.ProximityEvent{
		Type:     entity.EventTypeLocationDetected,
		VendorID: m.vendorID,
		Position: &position,
		Metadata: map[string]any{"outcome": outcome},
	})
}

func (m *Monitor) handleAnswer(ctx context.Context, answer service.ConfirmationAnswer) {
	cur := m.current.Load()
	if cur == nil || cur.session.ID != answer.SessionID {
		m.logger.InfoContext(ctx, "Ignoring answer for a session that is not current",
			slog.String("session_id", answer.SessionID.String()))

		return
	}

	if answer.Accepted {
		m.confirm(ctx, cur)
	} else {
		m.decline(ctx, cur, entity.CancelReasonUserDeclined)
	}
}

// Check runs the periodic duties: stale-position requests, the max-duration
// limit, confirmation timeouts, outbox flushing and escalation alerts.
func (m *Monitor) Check(ctx context.Context) {
	now := m.now()

	// Session deadlines run first; they must not wait on the position source.
	if cur := m.current.Load(); cur != nil {
		switch cur.session.State {
		case entity.SessionStateInProgress:
			if m.exceededMaxDuration(cur.session, now) {
				m.logger.InfoContext(ctx, "Session exceeded its maximum duration",
					slog.String("session_id", cur.session.ID.String()))
				m.finish(ctx, cur, entity.FinishReasonMaxDurationExceeded, m.lastKnownPosition())
			}
		case entity.SessionStatePendingConfirmation:
			if !cur.promptedAt.IsZero() && now.Sub(cur.promptedAt) > m.settings.ConfirmationTimeout {
				m.decline(ctx, cur, entity.CancelReasonConfirmationTimeout)
			}
		}
	}

	m.mu.Lock()
	lastAt := m.lastPositionAt
	m.mu.Unlock()
	if lastAt.IsZero() || now.Sub(lastAt) > m.settings.StalePositionAfter {
		reqCtx, cancel := m.bounded(ctx)
		err := m.positions.RequestPosition(reqCtx, m.vendorID)
		cancel()
		if err != nil {
			m.handlePositionError(ctx, errors.Wrap(err, "position request failed"))
		}
	}

	m.flush(ctx)
	m.escalate(ctx, now)
}

func (m *Monitor) maxDuration(session *entity.ProximityRecordingSession) time.Duration {
	if session.Config.MaxDurationSeconds > 0 {
		return time.Duration(session.Config.MaxDurationSeconds) * time.Second
	}

	return m.settings.MaxSessionDuration
}

func (m *Monitor) exceededMaxDuration(session *entity.ProximityRecordingSession, now time.Time) bool {
	limit := m.maxDuration(session)
	if limit <= 0 {
		return false
	}

	started := session.EntryPosition.Timestamp
	if session.StartedAt != nil {
		started = *session.StartedAt
	}

	return now.Sub(started) > limit
}

func (m *Monitor) confirm(ctx context.Context, cur *tracked) {
	callCtx, cancel := m.bounded(ctx)
	session, err := m.sessions.ConfirmProximitySession(callCtx, cur.session.ID)
	cancel()

	changed := m.applyTransition(ctx, cur, session, err)
	if changed && err == nil {
		m.pushStarted(session, cur.zone)
	}
}

func (m *Monitor) decline(ctx context.Context, cur *tracked, reason entity.CancelReason) {
	callCtx, cancel := m.bounded(ctx)
	session, err := m.sessions.DeclineProximitySession(callCtx, cur.session.ID, reason)
	cancel()

	m.applyTransition(ctx, cur, session, err)
}

func (m *Monitor) finish(ctx context.Context, cur *tracked, reason entity.FinishReason, exit *entity.Position) {
	callCtx, cancel := m.bounded(ctx)
	session, err := m.sessions.FinishProximitySession(callCtx, &usecase.FinishSessionInput{
		SessionID:    cur.session.ID,
		Reason:       reason,
		ExitPosition: exit,
	})
	cancel()

	changed := m.applyTransition(ctx, cur, session, err)
	// A session finished elsewhere comes back unchanged; its push was not ours to send.
	if changed && session.FinishedFor(reason) {
		m.pushFinished(session, cur.zone)
	}
}

// applyTransition stores the session returned by a transition and relays it
// with the reason the store recorded. It reports whether the state changed.
func (m *Monitor) applyTransition(ctx context.Context, cur *tracked, session *entity.ProximityRecordingSession, err error) bool {
	if err != nil {
		if session == nil {
			m.logger.ErrorContext(ctx, "Session transition failed",
				slog.String("session_id", cur.session.ID.String()),
				slog.Any("error", err))

			return false
		}
		// The session moved under us; adopt its actual state.
		m.logger.InfoContext(ctx, "Session transition not applied",
			slog.String("session_id", session.ID.String()),
			slog.String("state", string(session.State)),
			slog.Any("error", err))
	}
	if session == nil {
		return false
	}

	var next *tracked
	if session.State.IsOpen() {
		next = &tracked{session: session, zone: cur.zone, promptedAt: cur.promptedAt}
	}
	if !m.current.CompareAndSwap(cur, next) {
		return false
	}
	if session.State == cur.session.State {
		return false
	}

	m.sendRelay(ctx, service.RelayKindTransition, session, session.EndReason())

	return true
}

// adopt takes over an open session created elsewhere, for example before a restart.
func (m *Monitor) adopt(ctx context.Context, sessionID uuid.UUID) {
	callCtx, cancel := m.bounded(ctx)
	session, err := m.sessions.GetProximitySession(callCtx, sessionID)
	cancel()
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to load the open session", slog.Any("error", err))

		return
	}
	m.track(ctx, session)
}

func (m *Monitor) resume(ctx context.Context) {
	session, err := m.sessions.GetActiveSession(ctx, m.vendorID)
	if err != nil {
		m.logger.WarnContext(ctx, "Failed to look up an open session", slog.Any("error", err))

		return
	}
	if session != nil {
		m.track(ctx, session)
	}
}

func (m *Monitor) track(ctx context.Context, session *entity.ProximityRecordingSession) {
	if !session.State.IsOpen() {
		return
	}

	zone, err := m.zones.GetZone(ctx, session.ZoneID)
	if err != nil {
		m.logger.WarnContext(ctx, "Session zone unavailable, exits will not be detected",
			slog.String("zone_id", session.ZoneID.String()),
			slog.Any("error", err))
		zone = nil
	}

	next := &tracked{session: session, zone: zone}
	if session.State == entity.SessionStatePendingConfirmation {
		next.promptedAt = session.CreatedAt
	}
	if m.current.CompareAndSwap(nil, next) {
		m.logger.InfoContext(ctx, "Tracking open session",
			slog.String("session_id", session.ID.String()),
			slog.String("state", string(session.State)))
	}
}

func (m *Monitor) handlePositionError(ctx context.Context, err error) {
	now := m.now()

	m.mu.Lock()
	if m.gpsErrorSince.IsZero() {
		m.gpsErrorSince = now
	}
	m.mu.Unlock()

	m.logger.WarnContext(ctx, "Position source error", slog.Any("error", err))

	event := &entity.ProximityEvent{
		Type:     entity.EventTypeGPSError,
		VendorID: m.vendorID,
		Metadata: map[string]any{"error": err.Error()},
	}
	if cur := m.current.Load(); cur != nil {
		sessionID, zoneID := cur.session.ID, cur.session.ZoneID
		event.SessionID = &sessionID
		event.ZoneID = &zoneID
	}
	m.logEvent(ctx, event)
}

func (m *Monitor) recordPosition(ctx context.Context, position entity.Position) {
	m.mu.Lock()
	m.lastPosition = &position
	m.lastPositionAt = m.now()
	m.gpsErrorSince = time.Time{}
	m.gpsAlerted = false
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.SaveLastPosition(ctx, m.vendorID, position); err != nil {
			m.logger.DebugContext(ctx, "Failed to cache position", slog.Any("error", err))
		}
	}
}

func (m *Monitor) restorePosition(ctx context.Context) {
	if m.cache == nil {
		return
	}

	position, err := m.cache.GetLastPosition(ctx, m.vendorID)
	if err != nil {
		if !errors.Is(err, service.ErrPositionNotCached) {
			m.logger.WarnContext(ctx, "Failed to restore last position", slog.Any("error", err))
		}

		return
	}

	m.mu.Lock()
	m.lastPosition = position
	m.lastPositionAt = position.Timestamp
	m.mu.Unlock()
}

func (m *Monitor) lastKnownPosition() *entity.Position {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastPosition == nil {
		return nil
	}
	position := *m.lastPosition

	return &position
}

// Status is a point-in-time snapshot of the monitor.
type Status struct {
	VendorID          uuid.UUID                         `json:"vendor_id"`
	Running           bool                              `json:"running"`
	StartedAt         *time.Time                        `json:"started_at,omitempty"`
	Session           *entity.ProximityRecordingSession `json:"session,omitempty"`
	LastPosition      *entity.Position                  `json:"last_position,omitempty"`
	LastPositionAt    *time.Time                        `json:"last_position_at,omitempty"`
	GPSErrorSince     *time.Time                        `json:"gps_error_since,omitempty"`
	DeliveryBacklog   bool                              `json:"delivery_backlog"`
	OldestUndelivered *time.Time                        `json:"oldest_undelivered,omitempty"`
	RelaySequence     uint64                            `json:"relay_sequence"`
}

// Status reports the monitor's current state.
func (m *Monitor) Status(ctx context.Context) Status {
	status := Status{
		VendorID:      m.vendorID,
		RelaySequence: m.sequence.Load(),
		LastPosition:  m.lastKnownPosition(),
	}
	if cur := m.current.Load(); cur != nil {
		status.Session = cur.session.Clone()
	}

	m.mu.Lock()
	status.Running = m.running
	status.DeliveryBacklog = m.backlog
	if m.running {
		startedAt := m.startedAt
		status.StartedAt = &startedAt
	}
	if !m.lastPositionAt.IsZero() {
		at := m.lastPositionAt
		status.LastPositionAt = &at
	}
	if !m.gpsErrorSince.IsZero() {
		since := m.gpsErrorSince
		status.GPSErrorSince = &since
	}
	m.mu.Unlock()

	if oldest, err := m.outbox.OldestPending(ctx); err == nil {
		status.OldestUndelivered = oldest
	}

	return status
}
