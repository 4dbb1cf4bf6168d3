package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"proximity/config"
	"proximity/internal/domain/service"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type confirmationSource struct {
	client paho.Client
	topics Topics
	qos    byte
	logger *slog.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

// NewConfirmationSource reads confirmation answers published by the foreground app.
func NewConfirmationSource(client paho.Client, cfg *config.Config, logger *slog.Logger) service.ConfirmationSource {
	return &confirmationSource{
		client:  client,
		topics:  NewTopics(cfg),
		qos:     qosOf(cfg),
		logger:  logger,
		cancels: make(map[uuid.UUID]context.CancelFunc),
	}
}

func (s *confirmationSource) SubscribeAnswers(ctx context.Context, vendorID uuid.UUID, answers chan<- service.ConfirmationAnswer) error {
	subCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if prev, ok := s.cancels[vendorID]; ok {
		prev()
	}
	s.cancels[vendorID] = cancel
	s.mu.Unlock()

	topic := s.topics.Confirmation(vendorID.String())
	token := s.client.Subscribe(topic, s.qos, func(_ paho.Client, msg paho.Message) {
		var answer service.ConfirmationAnswer
		if err := json.Unmarshal(msg.Payload(), &answer); err != nil || answer.SessionID == uuid.Nil {
			s.logger.Warn("Dropping malformed confirmation answer",
				slog.String("topic", msg.Topic()),
				slog.Any("error", err))

			return
		}

		select {
		case answers <- answer:
		case <-subCtx.Done():
		}
	})
	if err := waitToken(ctx, token); err != nil {
		cancel()

		return errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	return nil
}

func (s *confirmationSource) UnsubscribeAnswers(vendorID uuid.UUID) error {
	s.mu.Lock()
	if cancel, ok := s.cancels[vendorID]; ok {
		cancel()
		delete(s.cancels, vendorID)
	}
	s.mu.Unlock()

	token := s.client.Unsubscribe(s.topics.Confirmation(vendorID.String()))
	token.Wait()

	return errors.Wrap(token.Error(), "failed to unsubscribe from confirmation answers")
}
