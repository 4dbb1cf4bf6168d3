package mqtt

import (
	"context"
	"log/slog"
	"time"

	"proximity/config"
	"proximity/internal/domain/lifecycle"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTopicPrefix = "proximity"
	disconnectQuiesce  = 250 // milliseconds
)

// ClientParams holds dependencies for the broker client provider.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the broker client. It connects on start and disconnects on stop.
func NewClient(params ClientParams) (paho.Client, error) {
	cfg := params.Config.MQTT
	if cfg == nil || cfg.Broker == "" {
		return nil, errors.New("mqtt broker is not configured")
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	// Keep the session so QoS 1 messages queued while offline are delivered after reconnect.
	opts.SetCleanSession(false)
	opts.SetOrderMatters(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		params.Logger.Warn("MQTT connection lost", slog.Any("error", err))
	})
	opts.SetOnConnectHandler(func(_ paho.Client) {
		params.Logger.Info("MQTT connected", slog.String("broker", cfg.Broker))
	})

	client := paho.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			token := client.Connect()
			// With connect retry enabled the token only completes once connected,
			// so a broker that is down does not block startup.
			if token.WaitTimeout(lifecycle.DefaultTimeout) && token.Error() != nil {
				return errors.Wrap(token.Error(), "failed to connect to MQTT broker")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			client.Disconnect(disconnectQuiesce)

			return nil
		},
	})

	return client, nil
}

// Topics builds the per-vendor topic names under a common prefix.
type Topics struct {
	prefix string
}

// NewTopics returns the topic layout from config.
func NewTopics(cfg *config.Config) Topics {
	prefix := defaultTopicPrefix
	if cfg != nil && cfg.MQTT != nil && cfg.MQTT.TopicPrefix != "" {
		prefix = cfg.MQTT.TopicPrefix
	}

	return Topics{prefix: prefix}
}

func (t Topics) vendor(vendorID string) string {
	return t.prefix + "/vendors/" + vendorID
}

// Position is where the device pushes fixes.
func (t Topics) Position(vendorID string) string {
	return t.vendor(vendorID) + "/position"
}

// PositionRequest is where the monitor asks the device for a fresh fix.
func (t Topics) PositionRequest(vendorID string) string {
	return t.vendor(vendorID) + "/position/request"
}

// Relay carries monitor messages to the foreground app.
func (t Topics) Relay(vendorID string) string {
	return t.vendor(vendorID) + "/relay"
}

// Confirmation carries the vendor's answers to confirmation prompts.
func (t Topics) Confirmation(vendorID string) string {
	return t.vendor(vendorID) + "/confirmation"
}

func qosOf(cfg *config.Config) byte {
	if cfg == nil || cfg.MQTT == nil || cfg.MQTT.QoS == 0 {
		return 1
	}
	if cfg.MQTT.QoS > 2 {
		return 2
	}

	return cfg.MQTT.QoS
}

// ErrNotConnected is returned instead of queueing a publish while the broker is unreachable.
var ErrNotConnected = errors.New("mqtt connection is not open")

func waitToken(ctx context.Context, token paho.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
