package service

import (
	"context"
)

// PushMessage is a notification shown on a vendor's devices. Data carries the
// prompt type and session id so the app can answer a confirmation.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarizes a multicast send.
type PushResult struct {
	Sent   int
	Failed int

	// Tokens the provider reported as unregistered or malformed. They should be pruned.
	InvalidTokens []string
}

// NotificationService pushes session prompts and updates to devices
type NotificationService interface {
	// SendToDevices sends msg to every token in one multicast call
	SendToDevices(ctx context.Context, tokens []string, msg PushMessage) (PushResult, error)

	// SendToDevice sends msg to a single token
	SendToDevice(ctx context.Context, token string, msg PushMessage) error
}
