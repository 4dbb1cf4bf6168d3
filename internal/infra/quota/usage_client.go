package quota

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"proximity/config"
	"proximity/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimeout = 5 * time.Second

	quotaPath = "/v1/vendors/{vendorId}/recording-quota"
	usagePath = "/v1/usage/recordings"
)

// UsageClient talks to the usage service. It is both the quota gate and the usage recorder.
type UsageClient struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// UsageClientParams holds dependencies for the usage client provider.
type UsageClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// UsageClientResult exposes the client under both contracts.
// Both are nil when no usage service is configured.
type UsageClientResult struct {
	fx.Out

	Gate     service.UsageGate
	Recorder service.UsageRecorder
}

// NewUsageClient builds the usage service client from config.
func NewUsageClient(params UsageClientParams) UsageClientResult {
	cfg := params.Config.Quota
	if cfg == nil || cfg.BaseURL == "" {
		params.Logger.Info("Usage service not configured, quota gate disabled")

		return UsageClientResult{}
	}

	client := NewClient(cfg, params.Logger)

	return UsageClientResult{Gate: client, Recorder: client}
}

// NewClient creates a usage client for the given service settings.
func NewClient(cfg *config.QuotaConfig, logger *slog.Logger) *UsageClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.APIKey)
	}

	return &UsageClient{httpClient: client, logger: logger}
}

type errorResponse struct {
	Message string `json:"message"`
}

// CheckRecordingQuota asks whether the vendor may start another recording.
func (c *UsageClient) CheckRecordingQuota(ctx context.Context, vendorID uuid.UUID) (*service.UsageDecision, error) {
	var (
		decision service.UsageDecision
		failure  errorResponse
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("vendorId", vendorID.String()).
		SetResult(&decision).
		SetError(&failure).
		Get(quotaPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call usage service")
	}
	if resp.IsError() {
		c.logger.WarnContext(ctx, "Usage service rejected quota check",
			slog.String("vendor_id", vendorID.String()),
			slog.Int("status_code", resp.StatusCode()),
			slog.String("message", failure.Message))

		return nil, errors.Errorf("usage service returned status %d", resp.StatusCode())
	}

	return &decision, nil
}

// RecordUsage reports a linked recording.
func (c *UsageClient) RecordUsage(ctx context.Context, record *service.UsageRecord) error {
	var failure errorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", record.SessionID.String()+":"+record.RecordingID).
		SetBody(record).
		SetError(&failure).
		Post(usagePath)
	if err != nil {
		return errors.Wrap(err, "failed to call usage service")
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted {
		return errors.Errorf("usage service returned status %d: %s", resp.StatusCode(), failure.Message)
	}

	return nil
}
