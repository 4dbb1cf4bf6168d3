package pubsub

import (
	"context"
	"log/slog"

	"proximity/config"
	"proximity/internal/domain/constants"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishProximityEvent(_ context.Context, msg *service.ProximityEventMessage) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", msg.Event.ID.String()),
		slog.String("event_type", string(msg.Event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// filteringPublisher forwards only the configured event types to the feed.
type filteringPublisher struct {
	next    service.EventPublisher
	allowed map[entity.EventType]struct{}
	logger  *slog.Logger
}

func newFilteringPublisher(next service.EventPublisher, types []string, logger *slog.Logger) (service.EventPublisher, error) {
	allowed := make(map[entity.EventType]struct{}, len(types))
	for _, raw := range types {
		eventType := entity.EventType(raw)
		if !eventType.IsValid() {
			return nil, errors.Errorf("unknown event type in pubsub.eventTypes: %s", raw)
		}
		allowed[eventType] = struct{}{}
	}

	return &filteringPublisher{next: next, allowed: allowed, logger: logger}, nil
}

func (p *filteringPublisher) PublishProximityEvent(ctx context.Context, msg *service.ProximityEventMessage) error {
	if _, ok := p.allowed[msg.Event.Type]; !ok {
		p.logger.Debug("Event type not published to feed", slog.String("event_type", string(msg.Event.Type)))

		return nil
	}

	return p.next.PublishProximityEvent(ctx, msg)
}

func (p *filteringPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	if len(cfg.EventTypes) > 0 {
		publisher, err = newFilteringPublisher(publisher, cfg.EventTypes, logger)
		if err != nil {
			return nil, err
		}
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
