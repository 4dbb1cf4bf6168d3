package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PositionPayload is the JSON message a device publishes on its position topic.
// A device that cannot obtain a fix sends Error instead of coordinates.
type PositionPayload struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
	Error          string    `json:"error,omitempty"`
}

type positionRequest struct {
	RequestID   uuid.UUID `json:"request_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type positionSource struct {
	client paho.Client
	topics Topics
	qos    byte
	logger *slog.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

// NewPositionSource reads device fixes from the broker.
func NewPositionSource(client paho.Client, cfg *config.Config, logger *slog.Logger) service.PositionSource {
	return &positionSource{
		client:  client,
		topics:  NewTopics(cfg),
		qos:     qosOf(cfg),
		logger:  logger,
		cancels: make(map[uuid.UUID]context.CancelFunc),
	}
}

func (s *positionSource) Subscribe(ctx context.Context, vendorID uuid.UUID, updates chan<- service.PositionUpdate) error {
	subCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if prev, ok := s.cancels[vendorID]; ok {
		prev()
	}
	s.cancels[vendorID] = cancel
	s.mu.Unlock()

	topic := s.topics.Position(vendorID.String())
	token := s.client.Subscribe(topic, s.qos, func(_ paho.Client, msg paho.Message) {
		update := decodePosition(vendorID, msg.Payload())
		select {
		case updates <- update:
		case <-subCtx.Done():
		}
	})
	if err := waitToken(ctx, token); err != nil {
		cancel()

		return errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	s.logger.InfoContext(ctx, "Subscribed to position stream", slog.String("topic", topic))

	return nil
}

// RequestPosition fails fast while disconnected: paho would otherwise store the
// publish for the reconnect and never complete its token.
func (s *positionSource) RequestPosition(ctx context.Context, vendorID uuid.UUID) error {
	if !s.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(positionRequest{RequestID: uuid.New(), RequestedAt: time.Now()})
	if err != nil {
		return errors.Wrap(err, "failed to encode position request")
	}

	topic := s.topics.PositionRequest(vendorID.String())
	if err := waitToken(ctx, s.client.Publish(topic, s.qos, false, payload)); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", topic)
	}

	return nil
}

func (s *positionSource) Unsubscribe(vendorID uuid.UUID) error {
	s.mu.Lock()
	if cancel, ok := s.cancels[vendorID]; ok {
		cancel()
		delete(s.cancels, vendorID)
	}
	s.mu.Unlock()

	token := s.client.Unsubscribe(s.topics.Position(vendorID.String()))
	token.Wait()

	return errors.Wrap(token.Error(), "failed to unsubscribe from position stream")
}

func decodePosition(vendorID uuid.UUID, raw []byte) service.PositionUpdate {
	var payload PositionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return service.PositionUpdate{VendorID: vendorID, Err: errors.Wrap(err, "malformed position payload")}
	}
	if payload.Error != "" {
		return service.PositionUpdate{VendorID: vendorID, Err: errors.New(payload.Error)}
	}

	position := entity.Position{
		Latitude:       payload.Latitude,
		Longitude:      payload.Longitude,
		AccuracyMeters: payload.AccuracyMeters,
		Timestamp:      payload.Timestamp,
	}
	if !position.HasValidCoordinates() {
		return service.PositionUpdate{VendorID: vendorID, Err: errors.Errorf("coordinates out of range: %f,%f", payload.Latitude, payload.Longitude)}
	}
	if position.Timestamp.IsZero() {
		position.Timestamp = time.Now()
	}

	return service.PositionUpdate{VendorID: vendorID, Position: position}
}
