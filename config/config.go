package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"

	"proximity/internal/domain/constants"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMinZoneSeparationMeters = 50
	defaultNearbySearchMeters      = 1000
	defaultNearbyLimit             = 5
	defaultTimezone                = "UTC"

	defaultCheckInterval       = 30 * time.Second
	defaultStalePositionAfter  = 5 * time.Minute
	defaultMaxSessionDuration  = 2 * time.Hour
	defaultConfirmationTimeout = 2 * time.Minute
	defaultDeliveryGracePeriod = 10 * time.Minute
	defaultFlushBatchSize      = 50
	defaultOutboxPath          = "proximity-outbox.db"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// Origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Proximity configures zone matching and diagnostics
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Monitor configures the background monitor daemon
	Monitor *MonitorConfig `json:"monitor" yaml:"monitor"`

	// MQTT configures the device position stream and foreground relay broker
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Redis configures the last-known-position cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Quota configures the usage gate and usage recorder client
	Quota *QuotaConfig `json:"quota" yaml:"quota"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ProximityConfig defines zone validation and nearby-zone diagnostics
type ProximityConfig struct {
	// Minimum distance in meters between two active zones of the same owner
	MinZoneSeparationMeters float64 `json:"minZoneSeparationMeters" yaml:"minZoneSeparationMeters"`

	// Search radius in meters for nearby-zone diagnostics when no zone matches
	NearbySearchMeters float64 `json:"nearbySearchMeters" yaml:"nearbySearchMeters"`

	// Maximum number of nearby zones returned with a no-zone result
	NearbyLimit int `json:"nearbyLimit" yaml:"nearbyLimit"`

	// IANA timezone applied to zones created without one
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`
}

// MonitorConfig defines the background monitor behaviour
type MonitorConfig struct {
	VendorID            string        `json:"vendorId" yaml:"vendorId"`
	HTTPPort            int           `json:"httpPort" yaml:"httpPort"`
	CheckInterval       time.Duration `json:"checkInterval" yaml:"checkInterval"`
	StalePositionAfter  time.Duration `json:"stalePositionAfter" yaml:"stalePositionAfter"`
	MaxSessionDuration  time.Duration `json:"maxSessionDuration" yaml:"maxSessionDuration"`
	ConfirmationTimeout time.Duration `json:"confirmationTimeout" yaml:"confirmationTimeout"`
	DeliveryGracePeriod time.Duration `json:"deliveryGracePeriod" yaml:"deliveryGracePeriod"`

	// Path of the sqlite file backing the offline queue
	OutboxPath     string `json:"outboxPath" yaml:"outboxPath"`
	FlushBatchSize int    `json:"flushBatchSize" yaml:"flushBatchSize"`
}

// MQTTConfig defines the broker connection used by the monitor
type MQTTConfig struct {
	Broker      string `json:"broker" yaml:"broker"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	QoS         byte   `json:"qos" yaml:"qos"`
}

// RedisConfig defines the position cache connection
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	PositionTTL time.Duration `json:"positionTtl" yaml:"positionTtl"`
}

// QuotaConfig defines the usage service client
type QuotaConfig struct {
	// Empty BaseURL disables the gate and recorder
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Event types forwarded to the feed. Empty forwards every type.
	EventTypes []string `json:"eventTypes" yaml:"eventTypes"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	if err := validateEnv(cfg.Env.Env); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateEnv(env string) error {
	switch env {
	case constants.EnvDevelop, constants.EnvStaging, constants.EnvProduction:
		return nil
	default:
		return errors.Errorf("unknown env.env %q", env)
	}
}

// applyDefaults fills zero values of the proximity and monitor sections.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = constants.EnvDevelop
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.MinZoneSeparationMeters <= 0 {
		cfg.Proximity.MinZoneSeparationMeters = defaultMinZoneSeparationMeters
	}
	if cfg.Proximity.NearbySearchMeters <= 0 {
		cfg.Proximity.NearbySearchMeters = defaultNearbySearchMeters
	}
	if cfg.Proximity.NearbyLimit <= 0 {
		cfg.Proximity.NearbyLimit = defaultNearbyLimit
	}
	if strings.TrimSpace(cfg.Proximity.DefaultTimezone) == "" {
		cfg.Proximity.DefaultTimezone = defaultTimezone
	}

	if cfg.Monitor == nil {
		cfg.Monitor = &MonitorConfig{}
	}
	if cfg.Monitor.CheckInterval <= 0 {
		cfg.Monitor.CheckInterval = defaultCheckInterval
	}
	if cfg.Monitor.StalePositionAfter <= 0 {
		cfg.Monitor.StalePositionAfter = defaultStalePositionAfter
	}
	if cfg.Monitor.MaxSessionDuration <= 0 {
		cfg.Monitor.MaxSessionDuration = defaultMaxSessionDuration
	}
	if cfg.Monitor.ConfirmationTimeout <= 0 {
		cfg.Monitor.ConfirmationTimeout = defaultConfirmationTimeout
	}
	if cfg.Monitor.DeliveryGracePeriod <= 0 {
		cfg.Monitor.DeliveryGracePeriod = defaultDeliveryGracePeriod
	}
	if cfg.Monitor.FlushBatchSize <= 0 {
		cfg.Monitor.FlushBatchSize = defaultFlushBatchSize
	}
	if strings.TrimSpace(cfg.Monitor.OutboxPath) == "" {
		cfg.Monitor.OutboxPath = defaultOutboxPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
