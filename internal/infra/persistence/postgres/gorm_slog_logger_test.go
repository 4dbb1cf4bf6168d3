package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		debug     bool
		begin     time.Duration
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "fast query is quiet", begin: 0},
		{name: "fast query in debug", debug: true, begin: 0, wantLevel: "INFO", wantMsg: "GORM query"},
		{name: "slow query", begin: time.Second, wantLevel: "WARN", wantMsg: "GORM slow query"},
		{name: "failure", err: errors.New("connection reset"), wantLevel: "ERROR", wantMsg: "GORM query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{
			name:  "open session race is quiet",
			err:   errors.New(`ERROR: duplicate key value violates unique constraint "uq_proximity_sessions_open_vendor" (SQLSTATE 23505)`),
			debug: false,
		},
		{
			name:      "open session race in debug",
			debug:     true,
			err:       errors.New(`duplicate key value violates unique constraint "uq_proximity_sessions_open_vendor"`),
			wantLevel: "DEBUG",
			wantMsg:   "GORM expected constraint violation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.begin), sqlFn, tt.err)

			records := decodeRecords(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, records)

				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, "SELECT 1", records[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), &config.Config{})

	reqLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE proximity_sessions", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	records := decodeRecords(t, &scoped)
	require.Len(t, records, 1)
	assert.Equal(t, "req-1", records[0]["request_id"])
}

func TestPoolWatcher_Observe(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{
		logger:    slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		threshold: 50 * time.Millisecond,
	}
	ctx := context.Background()

	w.observe(ctx, sql.DBStats{WaitCount: 0})
	assert.Empty(t, buf.String())

	w.observe(ctx, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	w.observe(ctx, sql.DBStats{WaitCount: 4, WaitDuration: 210 * time.Millisecond})

	records := decodeRecords(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "WARN", records[1]["level"])
	assert.InDelta(t, 2, records[1]["wait_count_delta"], 0)
}
