package bot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/keybase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("Default config is valid", testDefaultConfigIsValid)
	t.Run("Validating an invalid config fails", testValidatingInvalidConfigFails)
	t.Run("Loading a config file merges it onto the defaults", testLoadingConfigFileMergesItOntoDefaults)
	t.Run("Loading a missing config file fails", testLoadingMissingConfigFileFails)
	t.Run("Loading an invalid config file fails", testLoadingInvalidConfigFileFails)
	t.Run("Written config can be loaded back", testWrittenConfigCanBeLoadedBack)
}

func testDefaultConfigIsValid(t *testing.T) {
	cfg := bot.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "prod", cfg.Logging.Environment)
	assert.Equal(t, logging.InfoLevel, cfg.Logging.Level.Get())
	assert.False(t, cfg.Metrics.Enabled)
	assert.NotNil(t, cfg.NewLogger())
}

func testValidatingInvalidConfigFails(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*bot.Config)
		err    error
	}{
		{
			name:   "with unknown log environment",
			mutate: func(cfg *bot.Config) { cfg.Logging.Environment = "staging" },
			err:    bot.ErrInvalidLogEnvironment,
		}, {
			name:   "without keybase binary",
			mutate: func(cfg *bot.Config) { cfg.Keybase.Binary = "" },
			err:    keybase.ErrBinaryIsRequired,
		}, {
			name: "with enabled metrics without port",
			mutate: func(cfg *bot.Config) {
				cfg.Metrics.Enabled = true
				cfg.Metrics.Port = 0
			},
			err: bot.ErrMetricsPortIsRequired,
		}, {
			name: "with enabled metrics without path",
			mutate: func(cfg *bot.Config) {
				cfg.Metrics.Enabled = true
				cfg.Metrics.Path = ""
			},
			err: bot.ErrMetricsPathIsRequired,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// given
			cfg := bot.DefaultConfig()
			tc.mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			assert.ErrorIs(tt, err, tc.err)
		})
	}
}

func testLoadingConfigFileMergesItOntoDefaults(t *testing.T) {
	// given
	path := writeFileForTest(t, `
[logging]
level = "debug"

[keybase]
home-dir = "/tmp/alice"

[keybase.login-polling]
interval = "2s"

[metrics]
enabled = true
port = 9090
`)

	// when
	cfg, err := bot.LoadConfig(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Logging.Environment)
	assert.Equal(t, logging.DebugLevel, cfg.Logging.Level.Get())
	assert.Equal(t, "keybase", cfg.Keybase.Binary)
	assert.Equal(t, "/tmp/alice", cfg.Keybase.HomeDir)
	assert.Equal(t, 2*time.Second, cfg.Keybase.LoginPolling.Interval.Get())
	assert.Equal(t, keybase.DefaultConfig().LoginPolling.MaxRetries, cfg.Keybase.LoginPolling.MaxRetries)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func testLoadingMissingConfigFileFails(t *testing.T) {
	// when
	_, err := bot.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))

	// then
	assert.Error(t, err)
}

func testLoadingInvalidConfigFileFails(t *testing.T) {
	tcs := []struct {
		name    string
		content string
	}{
		{
			name:    "with malformed TOML",
			content: `[keybase`,
		}, {
			name: "with unsupported log level",
			content: `[logging]
level = "verbose"`,
		}, {
			name: "with invalid values",
			content: `[logging]
environment = "staging"`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// given
			path := writeFileForTest(tt, tc.content)

			// when
			_, err := bot.LoadConfig(path)

			// then
			assert.Error(tt, err)
		})
	}
}

func testWrittenConfigCanBeLoadedBack(t *testing.T) {
	// given
	cfg := bot.DefaultConfig()
	cfg.Keybase.HomeDir = "/tmp/bob"
	cfg.Logging.Level.Level = logging.WarnLevel
	path := filepath.Join(t.TempDir(), "config.toml")

	// when
	written, err := bot.WriteConfig(path, cfg)

	// then
	require.NoError(t, err)
	assert.Equal(t, path, written)

	// when
	loaded, err := bot.LoadConfig(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func writeFileForTest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file for test: %v", err)
	}

	return path
}
