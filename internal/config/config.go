package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variables that override the config file
const (
	EnvPort        = "KOII_PORT"
	EnvAutoConnect = "KOII_AUTO_CONNECT"
	EnvChannel     = "KOII_CHANNEL"
	EnvBPM         = "KOII_BPM"
	EnvLogLevel    = "KOII_LOG_LEVEL"
	EnvSentryDSN   = "SENTRY_DSN"
)

// Config holds application configuration
type Config struct {
	InstanceID           string  `json:"instance_id"`            // Generated on first launch
	FirstLaunchCompleted bool    `json:"first_launch_completed"` // Set once the file has been written
	PortName             string  `json:"port_name"`              // Port selector used for auto-connect
	AutoConnect          bool    `json:"auto_connect"`           // Connect when the server starts
	MIDIChannel          int     `json:"midi_channel"`           // 1-16
	DefaultBPM           float64 `json:"default_bpm"`            // Used when a drum pattern has no bpm
	NoteDuration         float64 `json:"note_duration"`          // Seconds, used when a note has no duration
	LogLevel             string  `json:"log_level"`
	SentryDSN            string  `json:"sentry_dsn,omitempty"`
	SentryEnvironment    string  `json:"sentry_environment,omitempty"`
}

// Default returns a config with a fresh instance id
func Default() *Config {
	return &Config{
		InstanceID:        uuid.New().String(),
		AutoConnect:       true,
		MIDIChannel:       1,
		DefaultBPM:        120,
		NoteDuration:      0.1,
		LogLevel:          "info",
		SentryEnvironment: "development",
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "koii-mcp"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads .env (if present), the config file and environment overrides.
// A missing file yields defaults which are saved back so the instance id
// stays stable across launches.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env file")
	}

	configPath, err := ConfigPath()
	if err != nil {
		return nil, errors.Wrap(err, "failed to locate config directory")
	}
	cfg, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	if !cfg.FirstLaunchCompleted {
		cfg.FirstLaunchCompleted = true
		if err := cfg.SaveTo(configPath); err != nil {
			logrus.WithError(err).WithField("path", configPath).Warn("could not save config")
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the config at path, returning defaults if not found
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	// Files written by hand may omit the id
	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.New().String()
	}
	return cfg, nil
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPort); ok {
		c.PortName = v
	}
	if v, ok := lookup(EnvAutoConnect); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvAutoConnect)
		}
		c.AutoConnect = b
	}
	if v, ok := lookup(EnvChannel); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvChannel)
		}
		c.MIDIChannel = n
	}
	if v, ok := lookup(EnvBPM); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvBPM)
		}
		c.DefaultBPM = f
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvSentryDSN); ok {
		c.SentryDSN = v
	}
	return nil
}

// Validate rejects values the session cannot use
func (c *Config) Validate() error {
	if err := errs.CheckRange("midi_channel", c.MIDIChannel, 1, 16); err != nil {
		return err
	}
	if c.DefaultBPM <= 0 {
		return errors.Wrapf(errs.ErrOutOfRange, "default_bpm %g must be positive", c.DefaultBPM)
	}
	if c.NoteDuration < 0 {
		return errors.Wrapf(errs.ErrOutOfRange, "note_duration %g must not be negative", c.NoteDuration)
	}
	return nil
}
