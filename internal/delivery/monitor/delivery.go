package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/lifecycle"
	"proximity/internal/domain/service"
	"proximity/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Alert codes relayed to the foreground when a problem outlasts the grace period.
const (
	AlertDeliveryDelayed = "delivery_delayed"
	AlertGPSUnavailable  = "gps_unavailable"
)

// sendRelay relays a session message to the foreground app.
func (m *Monitor) sendRelay(ctx context.Context, kind service.RelayKind, session *entity.ProximityRecordingSession, reason string) {
	m.relayMessage(ctx, &service.RelayMessage{
		Kind:    kind,
		Session: session.Clone(),
		Reason:  reason,
	})
}

func (m *Monitor) sendAlert(ctx context.Context, alert string) {
	m.logger.WarnContext(ctx, "Escalating alert to foreground", slog.String("alert", alert))
	m.relayMessage(ctx, &service.RelayMessage{Kind: service.RelayKindAlert, Alert: alert})
}

func (m *Monitor) relayMessage(ctx context.Context, msg *service.RelayMessage) {
	msg.ID = uuid.New()
	msg.VendorID = m.vendorID
	msg.Sequence = m.sequence.Add(1)
	msg.SentAt = m.now()

	m.deliver(ctx, service.OutboxKindRelay, msg.ID, msg, func(ctx context.Context) error {
		return m.relay.Relay(ctx, msg)
	})
}

// logEvent writes a monitor-originated event to the event log.
func (m *Monitor) logEvent(ctx context.Context, event *entity.ProximityEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = m.now()
	}

	m.deliver(ctx, service.OutboxKindEvent, event.ID, event, func(ctx context.Context) error {
		return m.events.Append(ctx, event)
	})
}

// deliver sends directly while nothing is queued. Once anything is queued, new
// messages queue behind it so the foreground sees them in sequence order.
func (m *Monitor) deliver(ctx context.Context, kind service.OutboxKind, id uuid.UUID, payload any, send func(context.Context) error) {
	m.mu.Lock()
	backlog := m.backlog
	m.mu.Unlock()

	if !backlog {
		sendCtx, cancel := m.bounded(ctx)
		err := send(sendCtx)
		cancel()
		if err == nil {
			return
		}
		m.logger.WarnContext(ctx, "Delivery failed, queueing locally",
			slog.String("kind", string(kind)),
			slog.String("id", id.String()),
			slog.Any("error", err))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to encode undelivered message", slog.Any("error", err))

		return
	}

	if err := m.outbox.Enqueue(ctx, &service.OutboxItem{
		ID:        id,
		Kind:      kind,
		Payload:   data,
		CreatedAt: m.now(),
	}); err != nil {
		m.logger.ErrorContext(ctx, "Failed to queue undelivered message",
			slog.String("kind", string(kind)),
			slog.String("id", id.String()),
			slog.Any("error", err))

		return
	}

	m.mu.Lock()
	m.backlog = true
	m.mu.Unlock()
}

// flush retries queued messages oldest first and stops at the first failure.
func (m *Monitor) flush(ctx context.Context) {
	m.mu.Lock()
	backlog := m.backlog
	m.mu.Unlock()

	items, err := m.outbox.Pending(ctx, m.settings.FlushBatchSize)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to read outbox", slog.Any("error", err))

		return
	}
	if len(items) == 0 {
		if backlog {
			m.mu.Lock()
			m.backlog = false
			m.mu.Unlock()
		}

		return
	}

	for _, item := range items {
		sendCtx, cancel := m.bounded(ctx)
		err := m.redeliver(sendCtx, item)
		cancel()
		if err != nil {
			if markErr := m.outbox.MarkFailed(ctx, item.ID, err.Error()); markErr != nil {
				m.logger.ErrorContext(ctx, "Failed to record delivery attempt", slog.Any("error", markErr))
			}
			m.logger.DebugContext(ctx, "Outbox flush paused",
				slog.String("id", item.ID.String()),
				slog.Int("attempts", item.Attempts+1),
				slog.Any("error", err))

			return
		}
		if err := m.outbox.MarkDelivered(ctx, item.ID); err != nil {
			m.logger.ErrorContext(ctx, "Failed to mark outbox item delivered", slog.Any("error", err))

			return
		}
	}

	if len(items) < m.settings.FlushBatchSize {
		m.mu.Lock()
		m.backlog = false
		m.mu.Unlock()
	}
}

func (m *Monitor) redeliver(ctx context.Context, item *service.OutboxItem) error {
	switch item.Kind {
	case service.OutboxKindEvent:
		var event entity.ProximityEvent
		if err := json.Unmarshal(item.Payload, &event); err != nil {
			return errors.Wrap(err, "decode queued event")
		}

		return m.events.Append(ctx, &event)
	case service.OutboxKindRelay:
		var msg service.RelayMessage
		if err := json.Unmarshal(item.Payload, &msg); err != nil {
			return errors.Wrap(err, "decode queued relay message")
		}

		return m.relay.Relay(ctx, &msg)
	default:
		return errors.Errorf("unknown outbox kind %q", item.Kind)
	}
}

// escalate raises one alert per incident once undelivered messages or
// position errors outlast the grace period.
func (m *Monitor) escalate(ctx context.Context, now time.Time) {
	grace := m.settings.DeliveryGracePeriod

	oldest, err := m.outbox.OldestPending(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to read outbox age", slog.Any("error", err))
	}

	m.mu.Lock()
	raiseDelivery := false
	if oldest == nil && err == nil {
		m.deliveryAlert = false
	} else if oldest != nil && now.Sub(*oldest) > grace && !m.deliveryAlert {
		m.deliveryAlert = true
		raiseDelivery = true
	}

	raiseGPS := false
	if !m.gpsErrorSince.IsZero() && now.Sub(m.gpsErrorSince) > grace && !m.gpsAlerted {
		m.gpsAlerted = true
		raiseGPS = true
	}
	m.mu.Unlock()

	if raiseDelivery {
		m.sendAlert(ctx, AlertDeliveryDelayed)
	}
	if raiseGPS {
		m.sendAlert(ctx, AlertGPSUnavailable)
	}
}

func zoneName(zone *entity.ProximityZone) string {
	if zone == nil || zone.Name == "" {
		return "the zone"
	}

	return zone.Name
}

func (m *Monitor) pushConfirmationPrompt(session *entity.ProximityRecordingSession, zone *entity.ProximityZone, position entity.Position) {
	body := fmt.Sprintf("You are at %s. Confirm to start recording.", zoneName(zone))
	if zone != nil {
		body = fmt.Sprintf("You are %s from the center of %s. Confirm to start recording.",
			util.FormatDistance(geo.DistanceToZone(position, zone)), zoneName(zone))
	}

	m.push(session, "Start recording?", body, string(service.RelayKindConfirmationRequest))
}

func (m *Monitor) pushStarted(session *entity.ProximityRecordingSession, zone *entity.ProximityZone) {
	if !session.Config.NotifyOnStart {
		return
	}

	m.push(session, "Recording started", fmt.Sprintf("Recording your visit to %s.", zoneName(zone)), "recording_started")
}

func (m *Monitor) pushFinished(session *entity.ProximityRecordingSession, zone *entity.ProximityZone) {
	if !session.Config.NotifyOnStop {
		return
	}

	body := fmt.Sprintf("Recording at %s finished.", zoneName(zone))
	if session.TimeInZoneSeconds != nil {
		body = fmt.Sprintf("Recorded %s at %s.",
			util.FormatDuration(time.Duration(*session.TimeInZoneSeconds)*time.Second), zoneName(zone))
	}

	m.push(session, "Recording finished", body, "recording_finished")
}

// push sends a notification to the vendor's devices without blocking the loop.
func (m *Monitor) push(session *entity.ProximityRecordingSession, title, body, kind string) {
	if m.notifier == nil || m.devices == nil {
		return
	}

	data := map[string]string{
		"type":       kind,
		"session_id": session.ID.String(),
		"state":      string(session.State),
	}

	m.notifications.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		devices, err := m.devices.GetVendorDevices(ctx, m.vendorID)
		if err != nil {
			m.logger.WarnContext(ctx, "Failed to load vendor devices", slog.Any("error", err))

			return
		}

		tokens := make([]string, 0, len(devices))
		for _, device := range devices {
			tokens = append(tokens, device.FCMToken)
		}
		if len(tokens) == 0 {
			return
		}

		result, err := m.notifier.SendToDevices(ctx, tokens, service.PushMessage{Title: title, Body: body, Data: data})
		if err != nil {
			m.logger.WarnContext(ctx, "Push notification failed", slog.String("type", kind), slog.Any("error", err))

			return
		}
		if result.Failed > 0 {
			m.logger.InfoContext(ctx, "Push notification partially failed",
				slog.String("type", kind),
				slog.Int("failed", result.Failed))
		}
		if len(result.InvalidTokens) > 0 {
			if err := m.devices.PruneTokens(ctx, result.InvalidTokens); err != nil {
				m.logger.WarnContext(ctx, "Failed to prune invalid tokens", slog.Any("error", err))
			}
		}
	})
}
