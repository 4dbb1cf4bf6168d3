package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"monitor": map[string]any{
			"vendorId":           "",
			"maxSessionDuration": "2h",
		},
		"mqtt": map[string]any{
			"topicPrefix": "proximity",
		},
		"redis": map[string]any{
			"positionTtl": "24h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONITOR_VENDORID", want: "monitor.vendorId"},
		{envKey: "MONITOR_MAXSESSIONDURATION", want: "monitor.maxSessionDuration"},
		{envKey: "MQTT_TOPICPREFIX", want: "mqtt.topicPrefix"},
		{envKey: "REDIS_POSITIONTTL", want: "redis.positionTtl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  serviceName: proximity-monitor
monitor:
  vendorId: ""
  checkInterval: 30s
  maxSessionDuration: 2h
mqtt:
  topicPrefix: proximity
  qos: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proximitytest.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)

	vendorID := "0b7a8f3e-5d4c-4b1a-9e2f-1c3d5e7f9a0b"
	t.Setenv("MONITOR_VENDORID", vendorID)
	t.Setenv("MONITOR_CHECKINTERVAL", "5s")

	cfg, err := LoadWithEnv[Config]("proximitytest")
	require.NoError(t, err)

	assert.Equal(t, "proximity-monitor", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Monitor)
	assert.Equal(t, vendorID, cfg.Monitor.VendorID)
	assert.Equal(t, 5*time.Second, cfg.Monitor.CheckInterval)
	assert.Equal(t, 2*time.Hour, cfg.Monitor.MaxSessionDuration)
	require.NotNil(t, cfg.MQTT)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
