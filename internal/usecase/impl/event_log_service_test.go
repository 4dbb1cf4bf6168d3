package impl

import (
	"context"
	"testing"
	"time"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/service"
	mockRepo "proximity/internal/mocks/repository"
	mockService "proximity/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventLogService_Append(t *testing.T) {
	eventRepo := mockRepo.NewMockEventLogRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewEventLogService(EventLogServiceParams{
		EventRepo: eventRepo,
		Publisher: publisher,
		Logger:    testLogger(),
	}).(*eventLogService)
	svc.now = func() time.Time { return testNow }

	ctx := context.Background()
	event := &entity.ProximityEvent{
		Type:     entity.EventTypeGPSError,
		VendorID: uuid.New(),
		Metadata: map[string]any{"error": "permission denied"},
	}

	eventRepo.EXPECT().
		AppendEvent(ctx, event).
		Return(nil)
	publisher.EXPECT().
		PublishProximityEvent(ctx, mock.MatchedBy(func(msg *service.ProximityEventMessage) bool {
			return msg.Event == event
		})).
		Return(errors.New("publish failed"))

	require.NoError(t, svc.Append(ctx, event))
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, testNow, event.OccurredAt)
	assert.Equal(t, testNow, event.CreatedAt)
}

func TestEventLogService_Append_Invalid(t *testing.T) {
	eventRepo := mockRepo.NewMockEventLogRepository(t)
	svc := NewEventLogService(EventLogServiceParams{EventRepo: eventRepo, Logger: testLogger()})

	err := svc.Append(context.Background(), &entity.ProximityEvent{Type: "teleport", VendorID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = svc.Append(context.Background(), &entity.ProximityEvent{Type: entity.EventTypeZoneEntry})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEventLogService_Append_RepositoryError(t *testing.T) {
	eventRepo := mockRepo.NewMockEventLogRepository(t)
	svc := NewEventLogService(EventLogServiceParams{EventRepo: eventRepo, Logger: testLogger()})

	eventRepo.EXPECT().
		AppendEvent(mock.Anything, mock.AnythingOfType("*entity.ProximityEvent")).
		Return(errors.New("disk full"))

	err := svc.Append(context.Background(), &entity.ProximityEvent{Type: entity.EventTypeZoneEntry, VendorID: uuid.New()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append event")
}

func TestEventLogService_ListEvents(t *testing.T) {
	eventRepo := mockRepo.NewMockEventLogRepository(t)
	svc := NewEventLogService(EventLogServiceParams{EventRepo: eventRepo, Logger: testLogger()})

	ctx := context.Background()
	sessionID := uuid.New()

	_, err := svc.ListEvents(ctx, entity.EventFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	eventRepo.EXPECT().
		ListEvents(ctx, entity.EventFilter{SessionID: &sessionID, Limit: defaultEventListLimit}).
		Return([]*entity.ProximityEvent{{ID: uuid.New()}}, nil)

	events, err := svc.ListEvents(ctx, entity.EventFilter{SessionID: &sessionID})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	eventRepo.EXPECT().
		ListEvents(ctx, entity.EventFilter{SessionID: &sessionID, Limit: maxEventListLimit}).
		Return(nil, nil)

	_, err = svc.ListEvents(ctx, entity.EventFilter{SessionID: &sessionID, Limit: 50000})
	require.NoError(t, err)
}
