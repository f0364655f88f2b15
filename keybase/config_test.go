package keybase_test

import (
	"testing"

	"code.vegaprotocol.io/keybot/keybase"
	"code.vegaprotocol.io/keybot/libs/encoding"
	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("Default configuration is valid", testDefaultConfigurationIsValid)
	t.Run("Validating an invalid configuration fails", testValidatingInvalidConfigurationFails)
}

func testDefaultConfigurationIsValid(t *testing.T) {
	cfg := keybase.DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "keybase", cfg.Binary)
	assert.Empty(t, cfg.HomeDir)
}

func testValidatingInvalidConfigurationFails(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*keybase.Config)
		err    error
	}{
		{
			name:   "without binary",
			mutate: func(cfg *keybase.Config) { cfg.Binary = "" },
			err:    keybase.ErrBinaryIsRequired,
		}, {
			name:   "without polling interval",
			mutate: func(cfg *keybase.Config) { cfg.LoginPolling.Interval = encoding.Duration{} },
			err:    keybase.ErrLoginPollingIntervalMustBeSet,
		}, {
			name:   "without polling retries",
			mutate: func(cfg *keybase.Config) { cfg.LoginPolling.MaxRetries = 0 },
			err:    keybase.ErrLoginPollingMaxRetriesMustBeSet,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// given
			cfg := keybase.DefaultConfig()
			tc.mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			assert.ErrorIs(tt, err, tc.err)
		})
	}
}
