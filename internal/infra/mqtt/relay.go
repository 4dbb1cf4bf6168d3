package mqtt

import (
	"context"
	"encoding/json"

	"proximity/config"
	"proximity/internal/domain/service"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

type foregroundRelay struct {
	client paho.Client
	topics Topics
	qos    byte
}

// NewForegroundRelay publishes monitor messages to the vendor's relay topic.
func NewForegroundRelay(client paho.Client, cfg *config.Config) service.ForegroundRelay {
	return &foregroundRelay{client: client, topics: NewTopics(cfg), qos: qosOf(cfg)}
}

func (r *foregroundRelay) Relay(ctx context.Context, msg *service.RelayMessage) error {
	if !r.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode relay message")
	}

	topic := r.topics.Relay(msg.VendorID.String())
	if err := waitToken(ctx, r.client.Publish(topic, r.qos, false, payload)); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", topic)
	}

	return nil
}
