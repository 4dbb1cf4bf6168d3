package monitor

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/service"
	"proximity/internal/infra/outbox"
	mockService "proximity/internal/mocks/service"
	mockUsecase "proximity/internal/mocks/usecase"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	zoneLat = -34.6037
	zoneLon = -58.3816

	// about 120 m north of the zone center
	outsideLat = zoneLat + 0.00108
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// fakeSessions is an in-memory session state machine for one zone.
type fakeSessions struct {
	usecase.ProximitySessionUsecase

	mu       sync.Mutex
	zone     *entity.ProximityZone
	snapshot entity.ConfigSnapshot
	now      func() time.Time
	sessions map[uuid.UUID]*entity.ProximityRecordingSession
	startErr error
	starts   int
}

func (f *fakeSessions) StartProximitySession(_ context.Context, in *usecase.StartSessionInput) (*usecase.StartSessionOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.starts++
	if f.startErr != nil {
		return nil, f.startErr
	}
	for _, s := range f.sessions {
		if s.VendorID == in.VendorID && s.State.IsOpen() {
			return nil, domainerrors.NewSessionAlreadyActiveError(s.ID)
		}
	}
	if geo.HasExited(in.Position, f.zone) {
		return &usecase.StartSessionOutput{Created: false}, nil
	}

	requires := f.snapshot.ConfirmBeforeStart && in.ActivationType == entity.ActivationAutomatic
	session := f.newSession(in.VendorID, in.Position, requires)

	return &usecase.StartSessionOutput{
		Created:              true,
		Session:              session.Clone(),
		Zone:                 f.zone,
		RequiresConfirmation: requires,
	}, nil
}

func (f *fakeSessions) newSession(vendorID uuid.UUID, position entity.Position, pending bool) *entity.ProximityRecordingSession {
	now := f.now()
	session := &entity.ProximityRecordingSession{
		ID:             uuid.New(),
		VendorID:       vendorID,
		ZoneID:         f.zone.ID,
		Config:         f.snapshot,
		EntryPosition:  position,
		State:          entity.SessionStateInProgress,
		ActivationType: entity.ActivationAutomatic,
		StartedAt:      &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if pending {
		session.State = entity.SessionStatePendingConfirmation
		session.StartedAt = nil
	}
	f.sessions[session.ID] = session

	return session
}

func (f *fakeSessions) seed(vendorID uuid.UUID, state entity.SessionState) *entity.ProximityRecordingSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	position := entity.Position{Latitude: zoneLat, Longitude: zoneLon, AccuracyMeters: 5, Timestamp: f.now()}

	return f.newSession(vendorID, position, state == entity.SessionStatePendingConfirmation).Clone()
}

func (f *fakeSessions) get(id uuid.UUID) *entity.ProximityRecordingSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions[id].Clone()
}

func (f *fakeSessions) ConfirmProximitySession(_ context.Context, id uuid.UUID) (*entity.ProximityRecordingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	if s.State != entity.SessionStatePendingConfirmation {
		return s.Clone(), domainerrors.ErrInvalidTransition
	}
	now := f.now()
	s.State = entity.SessionStateInProgress
	s.ActivationType = entity.ActivationConfirmed
	s.StartedAt = &now
	s.UpdatedAt = now

	return s.Clone(), nil
}

func (f *fakeSessions) DeclineProximitySession(_ context.Context, id uuid.UUID, reason entity.CancelReason) (*entity.ProximityRecordingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	if s.State != entity.SessionStatePendingConfirmation {
		return s.Clone(), domainerrors.ErrInvalidTransition
	}
	now := f.now()
	s.State = entity.SessionStateCancelled
	s.TerminationReason = string(reason)
	s.EndedAt = &now
	s.UpdatedAt = now

	return s.Clone(), nil
}

func (f *fakeSessions) FinishProximitySession(_ context.Context, in *usecase.FinishSessionInput) (*entity.ProximityRecordingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[in.SessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	if s.State.IsTerminal() {
		return s.Clone(), nil
	}
	if s.State != entity.SessionStateInProgress {
		return s.Clone(), domainerrors.ErrInvalidTransition
	}

	now := f.now()
	reason := in.Reason
	seconds := int64(now.Sub(*s.StartedAt) / time.Second)
	s.State = entity.SessionStateCompleted
	s.FinishReason = &reason
	s.ExitPosition = in.ExitPosition
	s.TimeInZoneSeconds = &seconds
	s.EndedAt = &now
	s.UpdatedAt = now

	return s.Clone(), nil
}

func (f *fakeSessions) GetProximitySession(_ context.Context, id uuid.UUID) (*entity.ProximityRecordingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return s.Clone(), nil
}

func (f *fakeSessions) GetActiveSession(_ context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sessions {
		if s.VendorID == vendorID && s.State.IsOpen() {
			return s.Clone(), nil
		}
	}

	return nil, nil
}

type fakePositions struct {
	mu           sync.Mutex
	updates      chan<- service.PositionUpdate
	requests     int
	unsubscribed bool
}

func (f *fakePositions) Subscribe(_ context.Context, _ uuid.UUID, updates chan<- service.PositionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = updates

	return nil
}

func (f *fakePositions) RequestPosition(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	return nil
}

func (f *fakePositions) Unsubscribe(_ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = true

	return nil
}

func (f *fakePositions) send(update service.PositionUpdate) {
	f.mu.Lock()
	updates := f.updates
	f.mu.Unlock()
	updates <- update
}

func (f *fakePositions) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests
}

// stalledPositions never completes a position request before its context ends,
// like a publish waiting on a broker reconnect.
type stalledPositions struct {
	*fakePositions
}

func (f *stalledPositions) RequestPosition(ctx context.Context, vendorID uuid.UUID) error {
	_ = f.fakePositions.RequestPosition(ctx, vendorID)
	<-ctx.Done()

	return ctx.Err()
}

type countingDevices struct {
	usecase.DeviceUsecase

	mu    sync.Mutex
	calls int
}

func (f *countingDevices) GetVendorDevices(_ context.Context, _ uuid.UUID) ([]*entity.VendorDevice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	return nil, nil
}

func (f *countingDevices) lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

type fakeAnswers struct {
	mu           sync.Mutex
	answers      chan<- service.ConfirmationAnswer
	unsubscribed bool
}

func (f *fakeAnswers) SubscribeAnswers(_ context.Context, _ uuid.UUID, answers chan<- service.ConfirmationAnswer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = answers

	return nil
}

func (f *fakeAnswers) UnsubscribeAnswers(_ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = true

	return nil
}

func (f *fakeAnswers) send(answer service.ConfirmationAnswer) {
	f.mu.Lock()
	answers := f.answers
	f.mu.Unlock()
	answers <- answer
}

type fakeRelay struct {
	mu   sync.Mutex
	fail bool
	sent []*service.RelayMessage
}

func (f *fakeRelay) Relay(_ context.Context, msg *service.RelayMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broker unreachable")
	}
	f.sent = append(f.sent, msg)

	return nil
}

func (f *fakeRelay) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeRelay) messages() []*service.RelayMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*service.RelayMessage(nil), f.sent...)
}

func (f *fakeRelay) ofKind(kind service.RelayKind) []*service.RelayMessage {
	var out []*service.RelayMessage
	for _, msg := range f.messages() {
		if msg.Kind == kind {
			out = append(out, msg)
		}
	}

	return out
}

type fakeEvents struct {
	mu     sync.Mutex
	fail   bool
	events []*entity.ProximityEvent

	// hold blocks Append, ignoring its context, until closed
	hold    chan struct{}
	entered chan struct{}
}

func (f *fakeEvents) Append(_ context.Context, event *entity.ProximityEvent) error {
	f.mu.Lock()
	hold, entered := f.hold, f.entered
	f.mu.Unlock()
	if hold != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-hold
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("event log unreachable")
	}
	f.events = append(f.events, event)

	return nil
}

func (f *fakeEvents) ListEvents(_ context.Context, _ entity.EventFilter) ([]*entity.ProximityEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*entity.ProximityEvent(nil), f.events...), nil
}

func (f *fakeEvents) logged() []*entity.ProximityEvent {
	events, _ := f.ListEvents(context.Background(), entity.EventFilter{})

	return events
}

type harness struct {
	m         *Monitor
	cfg       *config.Config
	vendorID  uuid.UUID
	zone      *entity.ProximityZone
	clock     *fakeClock
	ticks     chan time.Time
	sessions  *fakeSessions
	positions *fakePositions
	answers   *fakeAnswers
	relay     *fakeRelay
	events    *fakeEvents
	outbox    service.EventOutbox
}

func newHarness(t *testing.T, snapshot entity.ConfigSnapshot) *harness {
	t.Helper()

	clock := &fakeClock{t: testStart}
	vendorID := uuid.New()
	zone := &entity.ProximityZone{
		ID:                uuid.New(),
		Name:              "Mercado Central",
		Latitude:          zoneLat,
		Longitude:         zoneLon,
		RadiusMeters:      50,
		ActivationEnabled: true,
		IsActive:          true,
	}

	queue, err := outbox.Open(context.Background(), filepath.Join(t.TempDir(), "outbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = queue.Close() })

	zones := mockUsecase.NewMockZoneUsecase(t)
	zones.EXPECT().GetZone(mock.Anything, zone.ID).Return(zone, nil).Maybe()

	h := &harness{
		cfg: &config.Config{
			Monitor: &config.MonitorConfig{
				VendorID:            vendorID.String(),
				HTTPPort:            8090,
				CheckInterval:       30 * time.Second,
				StalePositionAfter:  5 * time.Minute,
				MaxSessionDuration:  2 * time.Hour,
				ConfirmationTimeout: 2 * time.Minute,
				DeliveryGracePeriod: 10 * time.Minute,
				FlushBatchSize:      50,
			},
		},
		vendorID: vendorID,
		zone:     zone,
		clock:    clock,
		ticks:    make(chan time.Time),
		sessions: &fakeSessions{
			zone:     zone,
			snapshot: snapshot,
			now:      clock.Now,
			sessions: map[uuid.UUID]*entity.ProximityRecordingSession{},
		},
		positions: &fakePositions{},
		answers:   &fakeAnswers{},
		relay:     &fakeRelay{},
		events:    &fakeEvents{},
		outbox:    queue,
	}

	m, err := New(Params{
		Config:    h.cfg,
		Sessions:  h.sessions,
		Zones:     zones,
		Events:    h.events,
		Positions: h.positions,
		Answers:   h.answers,
		Relay:     h.relay,
		Outbox:    queue,
		Logger:    testLogger(),
	})
	require.NoError(t, err)
	m.now = clock.Now
	m.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return h.ticks, func() {}
	}
	h.m = m

	return h
}

func (h *harness) at(lat, lon float64) service.PositionUpdate {
	return service.PositionUpdate{
		VendorID: h.vendorID,
		Position: entity.Position{Latitude: lat, Longitude: lon, AccuracyMeters: 5, Timestamp: h.clock.Now()},
	}
}

func (h *harness) inside() service.PositionUpdate {
	return h.at(zoneLat, zoneLon)
}

func (h *harness) outside() service.PositionUpdate {
	return h.at(outsideLat, zoneLon)
}

func (h *harness) current() *entity.ProximityRecordingSession {
	if cur := h.m.current.Load(); cur != nil {
		return cur.session
	}

	return nil
}

func noConfirmSnapshot() entity.ConfigSnapshot {
	snapshot := entity.DefaultConfigSnapshot()
	snapshot.NotifyOnStart = false
	snapshot.NotifyOnStop = false

	return snapshot
}

func TestNew_InvalidVendorID(t *testing.T) {
	_, err := New(Params{
		Config: &config.Config{Monitor: &config.MonitorConfig{VendorID: "vendor-7"}},
		Logger: testLogger(),
	})
	assert.Error(t, err)
}

func TestMonitor_ZoneEntryStartsSession(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())

	session := h.current()
	require.NotNil(t, session)
	assert.Equal(t, entity.SessionStateInProgress, session.State)
	assert.Equal(t, h.zone.ID, session.ZoneID)

	msgs := h.relay.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, service.RelayKindTransition, msgs[0].Kind)
	assert.Equal(t, uint64(1), msgs[0].Sequence)
	assert.Equal(t, h.vendorID, msgs[0].VendorID)
	assert.Equal(t, entity.SessionStateInProgress, msgs[0].Session.State)

	// Further positions inside the zone keep the same session.
	h.clock.Advance(30 * time.Second)
	h.m.handleUpdate(ctx, h.inside())
	assert.Equal(t, 1, h.sessions.starts)
	assert.Equal(t, session.ID, h.current().ID)
}

func TestMonitor_PositionOutsideAnyZone(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())

	h.m.handleUpdate(context.Background(), h.outside())

	assert.Nil(t, h.current())
	assert.Empty(t, h.relay.messages())
	assert.NotNil(t, h.m.Status(context.Background()).LastPosition)
}

func TestMonitor_ZoneExitFinishesSession(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	sessionID := h.current().ID

	h.clock.Advance(10 * time.Minute)
	h.m.handleUpdate(ctx, h.outside())

	assert.Nil(t, h.current())

	stored := h.sessions.get(sessionID)
	assert.Equal(t, entity.SessionStateCompleted, stored.State)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonZoneExit, *stored.FinishReason)
	require.NotNil(t, stored.ExitPosition)
	assert.InDelta(t, outsideLat, stored.ExitPosition.Latitude, 1e-9)
	assert.Equal(t, int64(600), *stored.TimeInZoneSeconds)

	msgs := h.relay.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, uint64(2), msgs[1].Sequence)
	assert.Equal(t, "zone_exit", msgs[1].Reason)
	assert.Equal(t, entity.SessionStateCompleted, msgs[1].Session.State)
}

func TestMonitor_MaxDurationFinishesWithoutNewPosition(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.MaxDurationSeconds = 3600

	h := newHarness(t, snapshot)
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	sessionID := h.current().ID

	h.clock.Advance(3599 * time.Second)
	h.m.Check(ctx)
	assert.Equal(t, entity.SessionStateInProgress, h.sessions.get(sessionID).State)
	assert.Equal(t, 1, h.positions.requestCount(), "a stale position triggers a request")

	h.clock.Advance(2 * time.Second)
	h.m.Check(ctx)

	stored := h.sessions.get(sessionID)
	assert.Equal(t, entity.SessionStateCompleted, stored.State)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonMaxDurationExceeded, *stored.FinishReason)
	assert.Equal(t, int64(3601), *stored.TimeInZoneSeconds)
	assert.Nil(t, h.current())

	transitions := h.relay.ofKind(service.RelayKindTransition)
	require.Len(t, transitions, 2)
	assert.Equal(t, "max_duration_exceeded", transitions[1].Reason)
}

func TestMonitor_MaxDurationFallsBackToSettings(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	sessionID := h.current().ID

	h.clock.Advance(2*time.Hour + time.Second)
	h.m.Check(ctx)

	stored := h.sessions.get(sessionID)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonMaxDurationExceeded, *stored.FinishReason)
}

func TestMonitor_ConfirmationAccepted(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.ConfirmBeforeStart = true

	h := newHarness(t, snapshot)
	ctx := context.Background()

	devices := mockUsecase.NewMockDeviceUsecase(t)
	notifier := mockService.NewMockNotificationService(t)
	h.m.devices = devices
	h.m.notifier = notifier

	devices.EXPECT().
		GetVendorDevices(mock.Anything, h.vendorID).
		Return([]*entity.VendorDevice{{FCMToken: "tok-1"}, {FCMToken: "tok-2"}}, nil)
	notifier.EXPECT().
		SendToDevices(mock.Anything, []string{"tok-1", "tok-2"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Start recording?" && msg.Data["type"] == string(service.RelayKindConfirmationRequest)
		})).
		Return(service.PushResult{Sent: 1, Failed: 1, InvalidTokens: []string{"tok-2"}}, nil)
	devices.EXPECT().
		PruneTokens(mock.Anything, []string{"tok-2"}).
		Return(nil)

	h.m.handleUpdate(ctx, h.inside())
	h.m.notifications.Wait()

	pending := h.current()
	require.NotNil(t, pending)
	assert.Equal(t, entity.SessionStatePendingConfirmation, pending.State)

	msgs := h.relay.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, service.RelayKindTransition, msgs[0].Kind)
	assert.Equal(t, service.RelayKindConfirmationRequest, msgs[1].Kind)

	// An answer for another session changes nothing.
	h.m.handleAnswer(ctx, service.ConfirmationAnswer{SessionID: uuid.New(), Accepted: true})
	assert.Equal(t, entity.SessionStatePendingConfirmation, h.current().State)

	h.m.handleAnswer(ctx, service.ConfirmationAnswer{SessionID: pending.ID, Accepted: true})

	confirmed := h.current()
	require.NotNil(t, confirmed)
	assert.Equal(t, entity.SessionStateInProgress, confirmed.State)
	assert.Equal(t, entity.ActivationConfirmed, h.sessions.get(pending.ID).ActivationType)

	transitions := h.relay.ofKind(service.RelayKindTransition)
	require.Len(t, transitions, 2)
	assert.Equal(t, entity.SessionStateInProgress, transitions[1].Session.State)
}

func TestMonitor_ConfirmationDeclined(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.ConfirmBeforeStart = true

	h := newHarness(t, snapshot)
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	pending := h.current()
	require.NotNil(t, pending)

	h.m.handleAnswer(ctx, service.ConfirmationAnswer{SessionID: pending.ID, Accepted: false})

	assert.Nil(t, h.current())
	stored := h.sessions.get(pending.ID)
	assert.Equal(t, entity.SessionStateCancelled, stored.State)
	assert.Equal(t, string(entity.CancelReasonUserDeclined), stored.TerminationReason)

	transitions := h.relay.ofKind(service.RelayKindTransition)
	require.Len(t, transitions, 2)
	assert.Equal(t, "user_declined", transitions[1].Reason)
}

func TestMonitor_ConfirmationTimeout(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.ConfirmBeforeStart = true

	h := newHarness(t, snapshot)
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	pending := h.current()
	require.NotNil(t, pending)

	h.clock.Advance(time.Minute)
	h.m.Check(ctx)
	assert.Equal(t, entity.SessionStatePendingConfirmation, h.sessions.get(pending.ID).State)

	h.clock.Advance(time.Minute + time.Second)
	h.m.Check(ctx)

	stored := h.sessions.get(pending.ID)
	assert.Equal(t, entity.SessionStateCancelled, stored.State)
	assert.Equal(t, string(entity.CancelReasonConfirmationTimeout), stored.TerminationReason)
	assert.Nil(t, h.current())
}

func TestMonitor_GPSErrorIsLoggedAndEscalated(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.m.handleUpdate(ctx, service.PositionUpdate{VendorID: h.vendorID, Err: errors.New("location permission revoked")})

	events := h.events.logged()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventTypeGPSError, events[0].Type)
	assert.Equal(t, h.vendorID, events[0].VendorID)
	assert.Equal(t, "location permission revoked", events[0].Metadata["error"])
	assert.Equal(t, testStart, events[0].OccurredAt)

	status := h.m.Status(ctx)
	require.NotNil(t, status.GPSErrorSince)
	assert.Equal(t, testStart, *status.GPSErrorSince)

	h.clock.Advance(5 * time.Minute)
	h.m.Check(ctx)
	assert.Empty(t, h.relay.ofKind(service.RelayKindAlert))

	h.clock.Advance(5*time.Minute + time.Second)
	h.m.Check(ctx)
	h.clock.Advance(time.Minute)
	h.m.Check(ctx)

	alerts := h.relay.ofKind(service.RelayKindAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertGPSUnavailable, alerts[0].Alert)

	// Monitoring continues once positions arrive again.
	h.m.handleUpdate(ctx, h.inside())
	require.NotNil(t, h.current())
	assert.Nil(t, h.m.Status(ctx).GPSErrorSince)
}

func TestMonitor_OfflineMessagesFlushInOrder(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.relay.setFail(true)
	h.m.handleUpdate(ctx, h.inside())
	require.NotNil(t, h.current())
	assert.Empty(t, h.relay.messages())
	assert.True(t, h.m.Status(ctx).DeliveryBacklog)

	// The relay is back, but the exit must not overtake the queued entry.
	h.relay.setFail(false)
	h.clock.Advance(time.Minute)
	h.m.handleUpdate(ctx, h.outside())
	assert.Empty(t, h.relay.messages())

	pending, err := h.outbox.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	h.m.Check(ctx)

	msgs := h.relay.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, uint64(1), msgs[0].Sequence)
	assert.Equal(t, entity.SessionStateInProgress, msgs[0].Session.State)
	assert.Equal(t, uint64(2), msgs[1].Sequence)
	assert.Equal(t, entity.SessionStateCompleted, msgs[1].Session.State)

	pending, err = h.outbox.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	status := h.m.Status(ctx)
	assert.False(t, status.DeliveryBacklog)
	assert.Nil(t, status.OldestUndelivered)
	assert.Equal(t, uint64(2), status.RelaySequence)
}

func TestMonitor_OfflineEventsAreQueued(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.events.fail = true
	h.m.handleUpdate(ctx, service.PositionUpdate{VendorID: h.vendorID, Err: errors.New("no fix")})
	assert.Empty(t, h.events.logged())

	h.events.fail = false
	h.m.Check(ctx)

	events := h.events.logged()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventTypeGPSError, events[0].Type)
}

func TestMonitor_DeliveryDelayAlert(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.relay.setFail(true)
	h.m.handleUpdate(ctx, h.inside())

	h.clock.Advance(10*time.Minute + time.Second)
	h.m.Check(ctx)
	h.clock.Advance(time.Minute)
	h.m.Check(ctx)

	pending, err := h.outbox.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2, "one transition and a single alert are queued")
	assert.Equal(t, 2, pending[0].Attempts)

	h.relay.setFail(false)
	h.m.Check(ctx)

	msgs := h.relay.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, service.RelayKindTransition, msgs[0].Kind)
	assert.Equal(t, service.RelayKindAlert, msgs[1].Kind)
	assert.Equal(t, AlertDeliveryDelayed, msgs[1].Alert)
}

func TestMonitor_ConcurrentFinishRelaysOnce(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	h.m.handleUpdate(ctx, h.inside())
	cur := h.m.current.Load()
	require.NotNil(t, cur)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			h.m.finish(ctx, cur, entity.FinishReasonZoneExit, nil)
		})
	}
	wg.Wait()

	completed := 0
	for _, msg := range h.relay.ofKind(service.RelayKindTransition) {
		if msg.Session.State == entity.SessionStateCompleted {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
	assert.Nil(t, h.current())
}

func TestMonitor_AdoptsSessionOpenedElsewhere(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	existing := h.sessions.seed(h.vendorID, entity.SessionStateInProgress)

	h.m.handleUpdate(ctx, h.inside())

	cur := h.m.current.Load()
	require.NotNil(t, cur)
	assert.Equal(t, existing.ID, cur.session.ID)
	assert.Equal(t, h.zone, cur.zone)
	assert.Empty(t, h.relay.messages())
}

func TestMonitor_StartRefusedLogsDetection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{name: "monitoring disabled", err: domainerrors.ErrMonitoringDisabled, outcome: "monitoring_disabled"},
		{name: "quota denied", err: domainerrors.ErrQuotaDenied.WithDetails("monthly limit reached"), outcome: "quota_denied"},
		{name: "unexpected failure", err: errors.New("database down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, noConfirmSnapshot())
			h.sessions.startErr = tt.err

			h.m.handleUpdate(context.Background(), h.inside())

			assert.Nil(t, h.current())
			events := h.events.logged()
			if tt.outcome == "" {
				assert.Empty(t, events)

				return
			}
			require.Len(t, events, 1)
			assert.Equal(t, entity.EventTypeLocationDetected, events[0].Type)
			assert.Equal(t, tt.outcome, events[0].Metadata["outcome"])
			require.NotNil(t, events[0].Position)
			assert.InDelta(t, zoneLat, events[0].Position.Latitude, 1e-9)
		})
	}
}

func TestMonitor_PositionCache(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	cache := mockService.NewMockPositionCache(t)
	h.m.cache = cache

	cached := &entity.Position{Latitude: zoneLat, Longitude: zoneLon, AccuracyMeters: 8, Timestamp: testStart.Add(-time.Minute)}
	cache.EXPECT().GetLastPosition(mock.Anything, h.vendorID).Return(cached, nil)

	h.m.restorePosition(ctx)

	status := h.m.Status(ctx)
	require.NotNil(t, status.LastPosition)
	assert.Equal(t, *cached, *status.LastPosition)
	assert.Equal(t, cached.Timestamp, *status.LastPositionAt)

	update := h.outside()
	cache.EXPECT().SaveLastPosition(mock.Anything, h.vendorID, update.Position).Return(nil)
	h.m.handleUpdate(ctx, update)
}

func TestMonitor_StartResumesAndStopFinishes(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	existing := h.sessions.seed(h.vendorID, entity.SessionStateInProgress)

	require.NoError(t, h.m.Start(ctx))
	assert.ErrorIs(t, h.m.Start(ctx), ErrAlreadyRunning)

	require.NotNil(t, h.current())
	assert.Equal(t, existing.ID, h.current().ID)
	assert.Equal(t, 1, h.positions.requestCount())

	h.positions.send(h.inside())
	assert.Eventually(t, func() bool {
		return h.m.Status(ctx).LastPosition != nil
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, h.m.Stop(ctx))

	stored := h.sessions.get(existing.ID)
	assert.Equal(t, entity.SessionStateCompleted, stored.State)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonSystemStop, *stored.FinishReason)
	require.NotNil(t, stored.ExitPosition)

	assert.True(t, h.positions.unsubscribed)
	assert.True(t, h.answers.unsubscribed)
	assert.False(t, h.m.Status(ctx).Running)

	require.NoError(t, h.m.Stop(ctx))
}

func TestMonitor_StopCancelsPendingSession(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()

	pending := h.sessions.seed(h.vendorID, entity.SessionStatePendingConfirmation)

	require.NoError(t, h.m.Start(ctx))
	require.NoError(t, h.m.Stop(ctx))

	stored := h.sessions.get(pending.ID)
	assert.Equal(t, entity.SessionStateCancelled, stored.State)
	assert.Equal(t, string(entity.CancelReasonSystemStop), stored.TerminationReason)
}

func TestMonitor_LoopDrivesSessionLifecycle(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.ConfirmBeforeStart = true
	snapshot.MaxDurationSeconds = 3600

	h := newHarness(t, snapshot)
	ctx := context.Background()

	require.NoError(t, h.m.Start(ctx))
	t.Cleanup(func() { _ = h.m.Stop(ctx) })

	h.positions.send(h.inside())
	assert.Eventually(t, func() bool {
		s := h.current()
		return s != nil && s.State == entity.SessionStatePendingConfirmation
	}, time.Second, 10*time.Millisecond)

	sessionID := h.current().ID
	h.answers.send(service.ConfirmationAnswer{SessionID: sessionID, Accepted: true})
	assert.Eventually(t, func() bool {
		s := h.current()
		return s != nil && s.State == entity.SessionStateInProgress
	}, time.Second, 10*time.Millisecond)

	h.clock.Advance(time.Hour + time.Second)
	h.ticks <- h.clock.Now()
	assert.Eventually(t, func() bool {
		return h.sessions.get(sessionID).State == entity.SessionStateCompleted
	}, time.Second, 10*time.Millisecond)

	stored := h.sessions.get(sessionID)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonMaxDurationExceeded, *stored.FinishReason)
}

func TestMonitor_StalledPositionRequestDoesNotBlockMaxDuration(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.MaxDurationSeconds = 3600

	h := newHarness(t, snapshot)
	ctx := context.Background()
	h.m.positions = &stalledPositions{fakePositions: h.positions}
	h.m.callTimeout = 20 * time.Millisecond

	require.NoError(t, h.m.Start(ctx))
	t.Cleanup(func() { _ = h.m.Stop(ctx) })

	h.positions.send(h.inside())
	assert.Eventually(t, func() bool {
		s := h.current()
		return s != nil && s.State == entity.SessionStateInProgress
	}, time.Second, 10*time.Millisecond)
	sessionID := h.current().ID

	// Every tick finds the position stale, so each one also hits the stalled request.
	h.clock.Advance(time.Hour + time.Second)
	h.ticks <- h.clock.Now()
	assert.Eventually(t, func() bool {
		return h.sessions.get(sessionID).State == entity.SessionStateCompleted
	}, time.Second, 10*time.Millisecond)

	stored := h.sessions.get(sessionID)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonMaxDurationExceeded, *stored.FinishReason)

	h.ticks <- h.clock.Now()
	h.positions.send(h.inside())
	assert.Eventually(t, func() bool {
		s := h.current()
		return s != nil && s.ID != sessionID
	}, time.Second, 10*time.Millisecond, "the loop keeps consuming positions")

	assert.Eventually(t, func() bool {
		for _, event := range h.events.logged() {
			if event.Type == entity.EventTypeGPSError {
				return true
			}
		}

		return false
	}, time.Second, 10*time.Millisecond)
}

func TestMonitor_FinishedElsewhereRelaysStoredReason(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.NotifyOnStop = true

	h := newHarness(t, snapshot)
	ctx := context.Background()
	devices := &countingDevices{}
	h.m.devices = devices
	h.m.notifier = mockService.NewMockNotificationService(t)

	h.m.handleUpdate(ctx, h.inside())
	sessionID := h.current().ID

	// The vendor stops the recording from the app; the monitor still tracks it as in progress.
	_, err := h.sessions.FinishProximitySession(ctx, &usecase.FinishSessionInput{
		SessionID: sessionID,
		Reason:    entity.FinishReasonManualStop,
	})
	require.NoError(t, err)

	h.clock.Advance(5 * time.Minute)
	h.m.handleUpdate(ctx, h.outside())
	h.m.notifications.Wait()

	assert.Nil(t, h.current())

	stored := h.sessions.get(sessionID)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonManualStop, *stored.FinishReason)

	transitions := h.relay.ofKind(service.RelayKindTransition)
	require.Len(t, transitions, 2)
	assert.Equal(t, entity.SessionStateCompleted, transitions[1].Session.State)
	assert.Equal(t, "manual_stop", transitions[1].Reason)
	assert.Zero(t, devices.lookups(), "no finished push for a session this monitor did not finish")
}

func TestMonitor_FinishPushesWhenMonitorFinishes(t *testing.T) {
	snapshot := noConfirmSnapshot()
	snapshot.NotifyOnStop = true

	h := newHarness(t, snapshot)
	ctx := context.Background()
	devices := &countingDevices{}
	h.m.devices = devices
	h.m.notifier = mockService.NewMockNotificationService(t)

	h.m.handleUpdate(ctx, h.inside())
	h.clock.Advance(5 * time.Minute)
	h.m.handleUpdate(ctx, h.outside())
	h.m.notifications.Wait()

	assert.Equal(t, 1, devices.lookups())
}

func TestMonitor_StopFinishesSessionWhenLoopIsWedged(t *testing.T) {
	h := newHarness(t, noConfirmSnapshot())
	ctx := context.Background()
	h.m.callTimeout = 100 * time.Millisecond

	existing := h.sessions.seed(h.vendorID, entity.SessionStateInProgress)
	require.NoError(t, h.m.Start(ctx))

	hold := make(chan struct{})
	entered := make(chan struct{}, 1)
	h.events.mu.Lock()
	h.events.hold, h.events.entered = hold, entered
	h.events.mu.Unlock()
	t.Cleanup(func() { close(hold) })

	h.positions.send(service.PositionUpdate{VendorID: h.vendorID, Err: errors.New("gps timeout")})
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("loop never reached the event log")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	assert.Error(t, h.m.Stop(stopCtx))

	stored := h.sessions.get(existing.ID)
	assert.Equal(t, entity.SessionStateCompleted, stored.State)
	require.NotNil(t, stored.FinishReason)
	assert.Equal(t, entity.FinishReasonSystemStop, *stored.FinishReason)
	assert.True(t, h.positions.unsubscribed)
	assert.False(t, h.m.Status(ctx).Running)
}
