package config

import (
	"os"
	"path/filepath"
	"slices"
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

const (
	defaultPath               = "."
	defaultConfigName         = "config"
	defaultMaxRequestBodySize = "100KB"

	// EnvPrefix is stripped from environment variables before they are matched to config keys.
	EnvPrefix = "WAITER_"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Backend is the restaurant API every request goes to
	Backend BackendConfig `json:"backend" yaml:"backend"`

	Session SessionConfig `json:"session" yaml:"session"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Poller PollerConfig `json:"poller" yaml:"poller"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for mirroring ready alerts to the waiter's phone
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for attendance station codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the gateway client reaches the restaurant API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// RateLimit is requests per second; zero disables limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// SessionConfig defines where the session is persisted
type SessionConfig struct {
	Path     string `json:"path" yaml:"path"`
	InMemory bool   `json:"inMemory" yaml:"inMemory"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	RequiredRole string `json:"requiredRole" yaml:"requiredRole"`
}

// PollerConfig defines the order-ready poller
type PollerConfig struct {
	Interval    time.Duration `json:"interval" yaml:"interval"`
	AlertStatus string        `json:"alertStatus" yaml:"alertStatus"`
}

// MetricsConfig defines the prometheus endpoint of the shell
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// NotificationConfig defines where toasts go
type NotificationConfig struct {
	// Provider type: "console", "feed" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// RecentLimit bounds the toasts kept for the shell's notification list
	RecentLimit int `json:"recentLimit" yaml:"recentLimit"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// DeviceTokens lists the devices that receive ready alerts, comma separated in env
	DeviceTokens []string `json:"deviceTokens" yaml:"deviceTokens"`
}

// Enabled reports whether push is configured
func (c *FirebaseConfig) Enabled() bool {
	return c != nil && c.CredentialsPath != "" && len(c.DeviceTokens) > 0
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	StationID            string `json:"stationId" yaml:"stationId"`
}

// LoadWithEnv loads an optional .yaml file through koanf and overlays
// environment variables carrying prefix.
func LoadWithEnv[T any](name, prefix string, configPath ...string) (*T, error) {
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
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// The file is optional: a waiter console runs from env and defaults alone.
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", name)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(k, v string) (string, any) {
			// Example: WAITER_BACKEND_BASEURL -> backend.baseUrl
			key := canonicalizeEnvKey(strings.TrimPrefix(k, prefix), existingConfigMap)

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
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

// New loads the configuration from the default search paths.
func New() (*Config, error) {
	return Load()
}

// Load loads the configuration. config.yaml is searched in the working
// directory, then in extraDirs, then in the conventional config folders.
func Load(extraDirs ...string) (*Config, error) {
	dirs := slices.Concat(extraDirs, []string{"config", "../config", "../../config"})
	cfg, err := LoadWithEnv[Config](defaultConfigName, EnvPrefix, dirs...)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("backend.baseUrl is required")
	}
	if c.Poller.Interval <= 0 {
		return errors.Errorf("poller.interval must be positive, got %s", c.Poller.Interval)
	}
	if c.Backend.RateLimit < 0 {
		return errors.Errorf("backend.rateLimit must not be negative, got %v", c.Backend.RateLimit)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "waiter"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:5000/api"
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 15 * time.Second
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = defaultSessionPath()
	}
	if cfg.Auth.RequiredRole == "" {
		cfg.Auth.RequiredRole = "WAITER"
	}
	if cfg.Poller.Interval == 0 {
		cfg.Poller.Interval = 10 * time.Second
	}
	if cfg.Poller.AlertStatus == "" {
		cfg.Poller.AlertStatus = "Ready"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "127.0.0.1"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8088
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Timeouts.ReadHeaderTimeout == 0 {
		cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Notification.Provider == "" {
		cfg.Notification.Provider = "console"
	}
	if cfg.Notification.RecentLimit <= 0 {
		cfg.Notification.RecentLimit = 20
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".waiter", "session")
	}

	return filepath.Join(dir, "waiter", "session")
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
