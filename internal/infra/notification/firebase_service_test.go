package notification

import (
	"context"
	"strconv"
	"testing"

	"proximity/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/1", nil
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)
	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

func TestFirebaseService_SendToDevice(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	err := svc.SendToDevice(context.Background(), "token-1", service.PushMessage{
		Title: "Confirm recording",
		Body:  "You entered Showroom",
		Data:  map[string]string{"session_id": "abc"},
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "token-1", client.sent[0].Token)
	assert.Equal(t, "abc", client.sent[0].Data["session_id"])
	assert.Equal(t, "high", client.sent[0].Android.Priority)

	client.err = errors.New("unavailable")
	assert.Error(t, svc.SendToDevice(context.Background(), "token-1", service.PushMessage{Title: "t", Body: "b"}))
}

func TestFirebaseService_SendToDevices(t *testing.T) {
	client := &fakeMessagingClient{
		response: &messaging.BatchResponse{
			SuccessCount: 2,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true},
				{Success: false, Error: errors.New("internal error")},
				{Success: true},
			},
		},
	}
	svc := &firebaseService{client: client}

	result, err := svc.SendToDevices(context.Background(),
		[]string{"a", "b", "c"}, service.PushMessage{Title: "Recording started", Body: "Showroom"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.InvalidTokens)
	require.Len(t, client.multicast, 1)
	assert.Equal(t, "Recording started", client.multicast[0].Notification.Title)
}

func TestFirebaseService_SendToDevices_Limits(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}
	msg := service.PushMessage{Title: "t", Body: "b"}

	result, err := svc.SendToDevices(context.Background(), nil, msg)
	require.NoError(t, err)
	assert.Equal(t, service.PushResult{}, result)

	tokens := make([]string, maxMulticastTokens+1)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}
	_, err = svc.SendToDevices(context.Background(), tokens, msg)
	assert.Error(t, err)
	assert.Empty(t, client.multicast)
}
