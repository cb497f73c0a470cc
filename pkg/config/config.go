// Package config resolves the runtime configuration from defaults, an optional
// YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file is not
// an error.
const DefaultPath = "houseprint.yaml"

// MissingEndpointMessage is shown to the user when no endpoint is configured.
const MissingEndpointMessage = "HOUSEPRINT_ENDPOINT_URL が未設定です（.env または環境変数）"

// Environment variables.
const (
	EnvEndpointURL    = "HOUSEPRINT_ENDPOINT_URL"
	EnvLegacyEndpoint = "VITE_GAS_API_URL"
	EnvTimeout        = "HOUSEPRINT_TIMEOUT"
	EnvTemplatesDir   = "HOUSEPRINT_TEMPLATES_DIR"
	EnvTimeZone       = "HOUSEPRINT_TIME_ZONE"
	EnvTheme          = "HOUSEPRINT_THEME"
	EnvLogLevel       = "HOUSEPRINT_LOG_LEVEL"
	EnvLogFormat      = "HOUSEPRINT_LOG_FORMAT"
)

// ErrMissingEndpoint is the configuration error raised when the endpoint URL
// is not set.
var ErrMissingEndpoint = errors.New("config: endpoint url is not configured")

// Config holds the resolved settings.
type Config struct {
	EndpointURL    string `yaml:"endpoint_url"`
	RequestTimeout string `yaml:"request_timeout"` // duration, "0" or empty disables the timeout
	TemplatesDir   string `yaml:"templates_dir"`
	TimeZone       string `yaml:"time_zone"`
	ThemeVariant   string `yaml:"theme"`      // color, mono
	LogLevel       string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat      string `yaml:"log_format"` // console, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TimeZone:     "Asia/Tokyo",
		ThemeVariant: "color",
		LogLevel:     "warn",
		LogFormat:    "console",
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", file, err)
		}
		present = append(present, file)
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: load env files: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv(EnvLegacyEndpoint); url != "" {
		c.EndpointURL = url
	}
	// The project variable wins over the name used by the original web build.
	if url := os.Getenv(EnvEndpointURL); url != "" {
		c.EndpointURL = url
	}
	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		c.RequestTimeout = timeout
	}
	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		c.TemplatesDir = dir
	}
	if tz := os.Getenv(EnvTimeZone); tz != "" {
		c.TimeZone = tz
	}
	if theme := os.Getenv(EnvTheme); theme != "" {
		c.ThemeVariant = theme
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.LogFormat = format
	}
}

// Timeout returns the parsed request timeout. Zero means unbounded.
func (c *Config) Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.RequestTimeout)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid request_timeout %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: request_timeout must not be negative: %s", raw)
	}
	return d, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" {
		name = "Asia/Tokyo"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("config: invalid time_zone %q: %w", name, err)
	}
	return loc, nil
}

// Validate checks the settings the data commands depend on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EndpointURL) == "" {
		return ErrMissingEndpoint
	}
	return c.ValidateLocal()
}

// ValidateLocal checks every setting except the endpoint. Commands that never
// load records use it.
func (c *Config) ValidateLocal() error {
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.ThemeVariant {
	case "", "color", "mono":
	default:
		return fmt.Errorf("config: invalid theme %q (valid: color, mono)", c.ThemeVariant)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: invalid log_format %q (valid: console, json)", c.LogFormat)
	}
	return nil
}
