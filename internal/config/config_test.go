package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	_, err = uuid.Parse(cfg.InstanceID)
	assert.NoError(t, err)
	assert.Equal(t, 1, cfg.MIDIChannel)
	assert.Equal(t, 120.0, cfg.DefaultBPM)
	assert.True(t, cfg.AutoConnect)
	assert.False(t, cfg.FirstLaunchCompleted)
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.PortName = "EP-133"
	cfg.MIDIChannel = 3
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port_name": "IAC"}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "IAC", cfg.PortName)
	assert.Equal(t, 120.0, cfg.DefaultBPM)
	assert.NotEmpty(t, cfg.InstanceID)
}

func TestLoadFrom_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		EnvPort:        "K.O. II",
		EnvAutoConnect: "false",
		EnvChannel:     " 10 ",
		EnvBPM:         "96.5",
		EnvLogLevel:    "debug",
		EnvSentryDSN:   "https://key@example.invalid/1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "K.O. II", cfg.PortName)
	assert.False(t, cfg.AutoConnect)
	assert.Equal(t, 10, cfg.MIDIChannel)
	assert.Equal(t, 96.5, cfg.DefaultBPM)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://key@example.invalid/1", cfg.SentryDSN)
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, key := range []string{EnvAutoConnect, EnvChannel, EnvBPM} {
		t.Run(key, func(t *testing.T) {
			err := Default().ApplyEnv(env(map[string]string{key: "lots"}))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"channel too low", func(c *Config) { c.MIDIChannel = 0 }},
		{"channel too high", func(c *Config) { c.MIDIChannel = 17 }},
		{"zero bpm", func(c *Config) { c.DefaultBPM = 0 }},
		{"negative duration", func(c *Config) { c.NoteDuration = -0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), errs.ErrOutOfRange)
		})
	}
}
