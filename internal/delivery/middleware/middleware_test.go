package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantSame string
	}{
		{name: "reuses request id", headers: map[string]string{deliverycontext.HeaderXRequestID: "req-42"}, wantSame: "req-42"},
		{name: "falls back to correlation id", headers: map[string]string{deliverycontext.HeaderXCorrelationID: "corr-7"}, wantSame: "corr-7"},
		{name: "rejects line breaks", headers: map[string]string{deliverycontext.HeaderXRequestID: "evil\nlevel=ERROR"}},
		{name: "rejects oversized ids", headers: map[string]string{deliverycontext.HeaderXRequestID: strings.Repeat("a", 200)}},
		{name: "generates when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})
			require.NoError(t, h(c))

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.wantSame != "" {
				assert.Equal(t, tt.wantSame, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/sessions/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"code": "SESSION_NOT_FOUND"})
	})

	for _, path := range []string{"/health", "/ok", "/sessions/abc"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "/sessions/:id", record["route"])
	assert.InDelta(t, http.StatusNotFound, record["status"], 0)
	assert.NotEmpty(t, record["request_id"])
}
