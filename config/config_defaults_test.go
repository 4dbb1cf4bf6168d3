package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Proximity)
	require.NotNil(t, cfg.Monitor)
	assert.Equal(t, "develop", cfg.Env.Env)
	assert.InDelta(t, 50, cfg.Proximity.MinZoneSeparationMeters, 0)
	assert.InDelta(t, 1000, cfg.Proximity.NearbySearchMeters, 0)
	assert.Equal(t, 5, cfg.Proximity.NearbyLimit)
	assert.Equal(t, "UTC", cfg.Proximity.DefaultTimezone)
	assert.Equal(t, 30*time.Second, cfg.Monitor.CheckInterval)
	assert.Equal(t, 2*time.Hour, cfg.Monitor.MaxSessionDuration)
	assert.Equal(t, 2*time.Minute, cfg.Monitor.ConfirmationTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Monitor.DeliveryGracePeriod)
	assert.Equal(t, 50, cfg.Monitor.FlushBatchSize)
	assert.Equal(t, "proximity-outbox.db", cfg.Monitor.OutboxPath)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{MinZoneSeparationMeters: 80, DefaultTimezone: "America/Argentina/Buenos_Aires"},
		Monitor:   &MonitorConfig{CheckInterval: 5 * time.Second, OutboxPath: "/var/lib/proximity/outbox.db"},
	}

	applyDefaults(cfg)

	assert.InDelta(t, 80, cfg.Proximity.MinZoneSeparationMeters, 0)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Proximity.DefaultTimezone)
	assert.Equal(t, 5*time.Second, cfg.Monitor.CheckInterval)
	assert.Equal(t, "/var/lib/proximity/outbox.db", cfg.Monitor.OutboxPath)
	assert.Equal(t, 5*time.Minute, cfg.Monitor.StalePositionAfter)
}

func TestValidateEnv(t *testing.T) {
	for _, env := range []string{"develop", "staging", "production"} {
		assert.NoError(t, validateEnv(env), env)
	}

	assert.Error(t, validateEnv("prod"))
}
