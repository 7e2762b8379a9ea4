// Package config loads the bridge configuration from YAML with environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Sqlite SqliteConfig `json:"sqlite" yaml:"sqlite"`

	Hub HubConfig `json:"hub" yaml:"hub"`

	Modems []ModemConfig `json:"modems" yaml:"modems"`

	Session SessionConfig `json:"session" yaml:"session"`

	Forwarder ForwarderConfig `json:"forwarder" yaml:"forwarder"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SqliteConfig defines the embedded database location and busy-retry bounds.
type SqliteConfig struct {
	Path string `json:"path" yaml:"path"`

	// BusyTimeout is passed to sqlite as the busy_timeout pragma.
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout"`

	// MaxRetries bounds the application-level retry of SQLITE_BUSY errors.
	MaxRetries   int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// HubConfig defines the upstream activation service endpoint and credentials.
type HubConfig struct {
	// PushURL is the endpoint PUSH_SMS requests are sent to.
	PushURL string `json:"pushUrl" yaml:"pushUrl"`

	// APIKey authenticates both directions of the agent protocol.
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Services the agent advertises in GET_SERVICES responses.
	Services []string `json:"services" yaml:"services"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryBackoff   time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// ModemConfig describes one physical modem attached to the host.
type ModemConfig struct {
	Port     string `json:"port" yaml:"port"`
	BaudRate int    `json:"baudRate" yaml:"baudRate"`
	Country  string `json:"country" yaml:"country"`
	Operator string `json:"operator" yaml:"operator"`
}

// SessionConfig bounds the per-modem command loop.
type SessionConfig struct {
	CommandTimeout time.Duration `json:"commandTimeout" yaml:"commandTimeout"`
	CommandRetries int           `json:"commandRetries" yaml:"commandRetries"`
	RetryBackoff   time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
	PollInterval   time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// ForwarderConfig sizes the SMS push worker pool.
type ForwarderConfig struct {
	Workers   int `json:"workers" yaml:"workers"`
	QueueSize int `json:"queueSize" yaml:"queueSize"`
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
			// Example: HUB_APIKEY -> hub.apiKey (not hub.apikey)
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Sqlite.BusyTimeout <= 0 {
		cfg.Sqlite.BusyTimeout = 5 * time.Second
	}
	if cfg.Sqlite.MaxRetries <= 0 {
		cfg.Sqlite.MaxRetries = 5
	}
	if cfg.Sqlite.RetryBackoff <= 0 {
		cfg.Sqlite.RetryBackoff = 50 * time.Millisecond
	}
	if cfg.Hub.RequestTimeout <= 0 {
		cfg.Hub.RequestTimeout = 30 * time.Second
	}
	if cfg.Hub.MaxAttempts <= 0 {
		cfg.Hub.MaxAttempts = 5
	}
	if cfg.Hub.RetryBackoff <= 0 {
		cfg.Hub.RetryBackoff = time.Second
	}
	if cfg.Session.CommandTimeout <= 0 {
		cfg.Session.CommandTimeout = 10 * time.Second
	}
	if cfg.Session.CommandRetries <= 0 {
		cfg.Session.CommandRetries = 3
	}
	if cfg.Session.RetryBackoff <= 0 {
		cfg.Session.RetryBackoff = 500 * time.Millisecond
	}
	if cfg.Session.PollInterval <= 0 {
		cfg.Session.PollInterval = time.Minute
	}
	if cfg.Forwarder.Workers <= 0 {
		cfg.Forwarder.Workers = 4
	}
	if cfg.Forwarder.QueueSize <= 0 {
		cfg.Forwarder.QueueSize = 128
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
