package impl

import (
	"context"
	"slices"
	"sort"
	"sync"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// memStore is an in-memory stand-in for the postgres repositories. Transactions
// are serialized and rolled back by restoring a snapshot.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	zones    map[uuid.UUID]*entity.ProximityZone
	configs  map[uuid.UUID]*entity.VendorProximityConfig
	sessions map[uuid.UUID]*entity.ProximityRecordingSession
	events   []*entity.ProximityEvent
	devices  map[uuid.UUID]*entity.VendorDevice

	lockedOwners []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		zones:    make(map[uuid.UUID]*entity.ProximityZone),
		configs:  make(map[uuid.UUID]*entity.VendorProximityConfig),
		sessions: make(map[uuid.UUID]*entity.ProximityRecordingSession),
		devices:  make(map[uuid.UUID]*entity.VendorDevice),
	}
}

type memSnapshot struct {
	zones    map[uuid.UUID]*entity.ProximityZone
	configs  map[uuid.UUID]*entity.VendorProximityConfig
	sessions map[uuid.UUID]*entity.ProximityRecordingSession
	events   []*entity.ProximityEvent
	devices  map[uuid.UUID]*entity.VendorDevice
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := memSnapshot{
		zones:    make(map[uuid.UUID]*entity.ProximityZone, len(s.zones)),
		configs:  make(map[uuid.UUID]*entity.VendorProximityConfig, len(s.configs)),
		sessions: make(map[uuid.UUID]*entity.ProximityRecordingSession, len(s.sessions)),
		events:   slices.Clone(s.events),
		devices:  make(map[uuid.UUID]*entity.VendorDevice, len(s.devices)),
	}
	for id, z := range s.zones {
		snap.zones[id] = cloneZone(z)
	}
	for id, c := range s.configs {
		cp := *c
		snap.configs[id] = &cp
	}
	for id, sess := range s.sessions {
		snap.sessions[id] = sess.Clone()
	}
	for id, d := range s.devices {
		cp := *d
		snap.devices[id] = &cp
	}

	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zones = snap.zones
	s.configs = snap.configs
	s.sessions = snap.sessions
	s.events = snap.events
	s.devices = snap.devices
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) NewZoneRepository() repository.ZoneRepository { return &memZoneRepo{s} }
func (s *memStore) NewVendorConfigRepository() repository.VendorConfigRepository {
	return &memConfigRepo{s}
}
func (s *memStore) NewSessionRepository() repository.SessionRepository   { return &memSessionRepo{s} }
func (s *memStore) NewEventLogRepository() repository.EventLogRepository { return &memEventRepo{s} }
func (s *memStore) NewDeviceRepository() repository.DeviceRepository     { return &memDeviceRepo{s} }

func (s *memStore) putZone(zone *entity.ProximityZone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones[zone.ID] = cloneZone(zone)
}

func (s *memStore) putConfig(cfg *entity.VendorProximityConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cfg
	s.configs[cfg.ID] = &cp
}

func (s *memStore) putSession(session *entity.ProximityRecordingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
}

func (s *memStore) session(id uuid.UUID) *entity.ProximityRecordingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess.Clone()
	}

	return nil
}

func (s *memStore) eventsOf(sessionID uuid.UUID) []entity.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()

	var types []entity.EventType
	for _, e := range s.events {
		if e.SessionID != nil && *e.SessionID == sessionID {
			types = append(types, e.Type)
		}
	}

	return types
}

func (s *memStore) openSessions(vendorID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, sess := range s.sessions {
		if sess.VendorID == vendorID && sess.State.IsOpen() {
			n++
		}
	}

	return n
}

func cloneZone(z *entity.ProximityZone) *entity.ProximityZone {
	cp := *z
	if z.Schedule != nil {
		schedule := entity.ZoneSchedule{
			Weekdays: slices.Clone(z.Schedule.Weekdays),
			Windows:  slices.Clone(z.Schedule.Windows),
		}
		cp.Schedule = &schedule
	}

	return &cp
}

type memZoneRepo struct{ s *memStore }

func (r *memZoneRepo) CreateZone(ctx context.Context, zone *entity.ProximityZone) error {
	r.s.putZone(zone)

	return nil
}

func (r *memZoneRepo) UpdateZone(ctx context.Context, zone *entity.ProximityZone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.zones[zone.ID]; !ok {
		return repository.ErrZoneNotFound
	}
	r.s.zones[zone.ID] = cloneZone(zone)

	return nil
}

func (r *memZoneRepo) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.ProximityZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok || z.DeletedAt != nil {
		return nil, repository.ErrZoneNotFound
	}

	return cloneZone(z), nil
}

func (r *memZoneRepo) ListZones(ctx context.Context, filter repository.ZoneFilter) ([]*entity.ProximityZone, error) {
	return r.collect(func(z *entity.ProximityZone) bool {
		if filter.OwnerID != nil && z.OwnerID != *filter.OwnerID {
			return false
		}

		return !filter.ActiveOnly || z.IsActive
	}), nil
}

func (r *memZoneRepo) FindActiveZonesInBound(ctx context.Context, bound orb.Bound) ([]*entity.ProximityZone, error) {
	return r.collect(func(z *entity.ProximityZone) bool {
		return z.IsActive && bound.Contains(orb.Point{z.Longitude, z.Latitude})
	}), nil
}

func (r *memZoneRepo) FindActivatableZonesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ProximityZone, error) {
	return r.collect(func(z *entity.ProximityZone) bool {
		return z.OwnerID == ownerID && z.IsActive && z.ActivationEnabled
	}), nil
}

func (r *memZoneRepo) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lockedOwners = append(r.s.lockedOwners, ownerID)

	return nil
}

func (r *memZoneRepo) SoftDeleteZone(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok {
		return repository.ErrZoneNotFound
	}
	now := z.UpdatedAt
	z.DeletedAt = &now
	z.IsActive = false

	return nil
}

func (r *memZoneRepo) HardDeleteZone(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.zones[id]; !ok {
		return repository.ErrZoneNotFound
	}
	delete(r.s.zones, id)

	return nil
}

func (r *memZoneRepo) collect(keep func(z *entity.ProximityZone) bool) []*entity.ProximityZone {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var zones []*entity.ProximityZone
	for _, z := range r.s.zones {
		if z.DeletedAt == nil && keep(z) {
			zones = append(zones, cloneZone(z))
		}
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].CreatedAt.Before(zones[j].CreatedAt) })

	return zones
}

type memConfigRepo struct{ s *memStore }

func (r *memConfigRepo) CreateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.configs {
		if c.IsActive && c.VendorID == cfg.VendorID && sameZone(c.ZoneID, cfg.ZoneID) {
			return repository.ErrDuplicateConfig
		}
	}
	cp := *cfg
	r.s.configs[cfg.ID] = &cp

	return nil
}

func (r *memConfigRepo) UpdateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.configs[cfg.ID]; !ok {
		return repository.ErrConfigNotFound
	}
	cp := *cfg
	r.s.configs[cfg.ID] = &cp

	return nil
}

func (r *memConfigRepo) FindConfigByID(ctx context.Context, id uuid.UUID) (*entity.VendorProximityConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.configs[id]
	if !ok {
		return nil, repository.ErrConfigNotFound
	}
	cp := *c

	return &cp, nil
}

func (r *memConfigRepo) FindActiveConfig(ctx context.Context, vendorID uuid.UUID, zoneID *uuid.UUID) (*entity.VendorProximityConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.configs {
		if c.IsActive && c.VendorID == vendorID && sameZone(c.ZoneID, zoneID) {
			cp := *c

			return &cp, nil
		}
	}

	return nil, repository.ErrConfigNotFound
}

func (r *memConfigRepo) FindConfigsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorProximityConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var configs []*entity.VendorProximityConfig
	for _, c := range r.s.configs {
		if c.VendorID == vendorID {
			cp := *c
			configs = append(configs, &cp)
		}
	}

	return configs, nil
}

func (r *memConfigRepo) DeactivateConfig(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.configs[id]
	if !ok {
		return repository.ErrConfigNotFound
	}
	c.IsActive = false

	return nil
}

func sameZone(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

type memSessionRepo struct{ s *memStore }

func (r *memSessionRepo) CreateSession(ctx context.Context, session *entity.ProximityRecordingSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.sessions {
		if other.VendorID == session.VendorID && other.State.IsOpen() {
			return repository.ErrOpenSessionExists
		}
	}
	r.s.sessions[session.ID] = session.Clone()

	return nil
}

func (r *memSessionRepo) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ProximityRecordingSession, error) {
	if sess := r.s.session(id); sess != nil {
		return sess, nil
	}

	return nil, repository.ErrSessionNotFound
}

func (r *memSessionRepo) FindOpenSessionByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.ProximityRecordingSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sess := range r.s.sessions {
		if sess.VendorID == vendorID && sess.State.IsOpen() {
			return sess.Clone(), nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (r *memSessionRepo) ListSessionsByVendor(ctx context.Context, vendorID uuid.UUID, states []entity.SessionState) ([]*entity.ProximityRecordingSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sessions []*entity.ProximityRecordingSession
	for _, sess := range r.s.sessions {
		if sess.VendorID == vendorID && (len(states) == 0 || slices.Contains(states, sess.State)) {
			sessions = append(sessions, sess.Clone())
		}
	}

	return sessions, nil
}

func (r *memSessionRepo) UpdateSessionIfState(ctx context.Context, session *entity.ProximityRecordingSession, expected entity.SessionState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.sessions[session.ID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	if current.State != expected {
		return repository.ErrSessionStateChanged
	}
	r.s.sessions[session.ID] = session.Clone()

	return nil
}

func (r *memSessionRepo) FindLatestSessionByZone(ctx context.Context, zoneID uuid.UUID, states []entity.SessionState) (*entity.ProximityRecordingSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var latest *entity.ProximityRecordingSession
	for _, sess := range r.s.sessions {
		if sess.ZoneID != zoneID || (len(states) > 0 && !slices.Contains(states, sess.State)) {
			continue
		}
		if latest == nil || sess.CreatedAt.After(latest.CreatedAt) {
			latest = sess
		}
	}
	if latest == nil {
		return nil, repository.ErrSessionNotFound
	}

	return latest.Clone(), nil
}

type memEventRepo struct{ s *memStore }

func (r *memEventRepo) AppendEvent(ctx context.Context, event *entity.ProximityEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.ID == event.ID {
			return nil
		}
	}
	cp := *event
	r.s.events = append(r.s.events, &cp)

	return nil
}

func (r *memEventRepo) ListEvents(ctx context.Context, filter entity.EventFilter) ([]*entity.ProximityEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var events []*entity.ProximityEvent
	for _, e := range r.s.events {
		if filter.VendorID != nil && e.VendorID != *filter.VendorID {
			continue
		}
		if filter.SessionID != nil && (e.SessionID == nil || *e.SessionID != *filter.SessionID) {
			continue
		}
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, e.Type) {
			continue
		}
		cp := *e
		events = append(events, &cp)
		if filter.Limit > 0 && len(events) == filter.Limit {
			break
		}
	}

	return events, nil
}

type memDeviceRepo struct{ s *memStore }

func (r *memDeviceRepo) CreateDevice(ctx context.Context, device *entity.VendorDevice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *device
	r.s.devices[device.ID] = &cp

	return nil
}

func (r *memDeviceRepo) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.VendorDevice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}
	cp := *d

	return &cp, nil
}

func (r *memDeviceRepo) FindDevicesByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error) {
	return r.collect(func(d *entity.VendorDevice) bool { return d.VendorID == vendorID }), nil
}

func (r *memDeviceRepo) FindActiveDevicesByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorDevice, error) {
	return r.collect(func(d *entity.VendorDevice) bool { return d.VendorID == vendorID && d.IsActive }), nil
}

func (r *memDeviceRepo) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.devices[deviceID]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	d.FCMToken = fcmToken

	return nil
}

func (r *memDeviceRepo) DeactivateDevices(ctx context.Context, fcmTokens []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.devices {
		if slices.Contains(fcmTokens, d.FCMToken) {
			d.IsActive = false
		}
	}

	return nil
}

func (r *memDeviceRepo) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.devices, id)

	return nil
}

func (r *memDeviceRepo) collect(keep func(d *entity.VendorDevice) bool) []*entity.VendorDevice {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var devices []*entity.VendorDevice
	for _, d := range r.s.devices {
		if keep(d) {
			cp := *d
			devices = append(devices, &cp)
		}
	}

	return devices
}
