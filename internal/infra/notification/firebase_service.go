package notification

import (
	"context"
	"log/slog"
	"time"

	"proximity/config"
	"proximity/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	maxMulticastTokens = 500
	promptTTL          = 5 * time.Minute
)

// messagingClient is the subset of the FCM client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// ServiceParams holds dependencies for the push notification provider.
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase sender, or nil when push is not configured.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push prompts disabled")

		return nil, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendToDevice sends a push notification to a single device token
func (s *firebaseService) SendToDevice(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: notificationOf(msg),
		Data:         msg.Data,
		Android:      androidConfig(),
		APNS:         apnsConfig(),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendToDevices sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendToDevices(ctx context.Context, tokens []string, msg service.PushMessage) (service.PushResult, error) {
	if len(tokens) == 0 {
		return service.PushResult{}, nil
	}

	if len(tokens) > maxMulticastTokens {
		return service.PushResult{}, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(msg),
		Data:         msg.Data,
		Android:      androidConfig(),
		APNS:         apnsConfig(),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return service.PushResult{}, errors.Wrap(err, "failed to send multicast notification")
	}

	result := service.PushResult{
		Sent:          response.SuccessCount,
		Failed:        response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func notificationOf(msg service.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

// androidConfig delivers prompts at high priority and drops them after promptTTL.
func androidConfig() *messaging.AndroidConfig {
	ttl := promptTTL

	return &messaging.AndroidConfig{
		Priority: "high",
		TTL:      &ttl,
	}
}

func apnsConfig() *messaging.APNSConfig {
	return &messaging.APNSConfig{
		Headers: map[string]string{
			"apns-priority":   "10",
			"apns-push-type":  "alert",
			"apns-expiration": "0",
		},
	}
}
