package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"proximity/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/proximity-events-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *resty.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: resty.New().
			SetTimeout(30*time.Second).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

// PublishProximityEvent pushes the event to the local endpoint
func (p *localHTTPPublisher) PublishProximityEvent(ctx context.Context, msg *service.ProximityEventMessage) error {
	eventData, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = msg.Event.ID.String()
	pushMsg.Message.OrderingKey = msg.Event.VendorID.String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(msg)

	req := p.httpClient.R().
		SetContext(ctx).
		SetBody(pushMsg)
	if msg.RequestID != "" {
		req.SetHeader("X-Request-Id", msg.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("local subscriber returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", msg.Event.ID.String()),
		slog.String("event_type", string(msg.Event.Type)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// eventAttributes builds message attributes subscribers can filter on.
func eventAttributes(msg *service.ProximityEventMessage) map[string]string {
	attributes := map[string]string{
		"event_id":   msg.Event.ID.String(),
		"event_type": string(msg.Event.Type),
		"vendor_id":  msg.Event.VendorID.String(),
	}
	if msg.Event.SessionID != nil {
		attributes["session_id"] = msg.Event.SessionID.String()
	}
	if msg.Event.ZoneID != nil {
		attributes["zone_id"] = msg.Event.ZoneID.String()
	}
	if msg.State != "" {
		attributes["session_state"] = string(msg.State)
	}
	if msg.RequestID != "" {
		attributes["request_id"] = msg.RequestID
	}

	return attributes
}
