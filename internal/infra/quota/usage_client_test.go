package quota

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *UsageClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.QuotaConfig{BaseURL: server.URL, Timeout: time.Second, APIKey: "secret"},
		slog.New(slog.DiscardHandler))
}

func TestUsageClient_CheckRecordingQuota(t *testing.T) {
	vendorID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/vendors/"+vendorID.String()+"/recording-quota", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(service.UsageDecision{Allowed: false, Remaining: 0, Reason: "monthly limit reached"})
	})

	decision, err := client.CheckRecordingQuota(context.Background(), vendorID)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "monthly limit reached", decision.Reason)
}

func TestUsageClient_CheckRecordingQuota_ServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"unknown vendor"}`))
	})

	_, err := client.CheckRecordingQuota(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestUsageClient_RecordUsage(t *testing.T) {
	record := &service.UsageRecord{
		VendorID:    uuid.New(),
		SessionID:   uuid.New(),
		RecordingID: "rec-42",
		Seconds:     95,
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/usage/recordings", r.URL.Path)
		assert.Equal(t, record.SessionID.String()+":rec-42", r.Header.Get("Idempotency-Key"))

		var got service.UsageRecord
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, *record, got)

		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, client.RecordUsage(context.Background(), record))
}

func TestUsageClient_RecordUsage_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate"}`))
	})

	err := client.RecordUsage(context.Background(), &service.UsageRecord{SessionID: uuid.New(), RecordingID: "rec"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewUsageClient_Disabled(t *testing.T) {
	result := NewUsageClient(UsageClientParams{
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})

	assert.Nil(t, result.Gate)
	assert.Nil(t, result.Recorder)
}
