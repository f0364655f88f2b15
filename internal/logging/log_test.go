package logging_test

import (
	"testing"

	"code.vegaprotocol.io/keybot/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	t.Run("Parsing supported levels succeeds", testParsingSupportedLevelsSucceeds)
	t.Run("Parsing unsupported level fails", testParsingUnsupportedLevelFails)
	t.Run("Naming a logger nests the names", testNamingLoggerNestsNames)
	t.Run("Setting the level updates it", testSettingLevelUpdatesIt)
}

func testParsingSupportedLevelsSucceeds(t *testing.T) {
	for _, l := range logging.SupportedLevels {
		level, err := logging.ParseLevel(l)
		require.NoError(t, err)
		assert.Equal(t, l, level.String())
	}
}

func testParsingUnsupportedLevelFails(t *testing.T) {
	_, err := logging.ParseLevel("chatty")

	assert.ErrorIs(t, err, logging.ErrUnsupportedLevel)
}

func testNamingLoggerNestsNames(t *testing.T) {
	log := logging.NewTestLogger().Named("bot").Named("wallet")

	assert.Equal(t, "bot.wallet", log.GetName())
}

func testSettingLevelUpdatesIt(t *testing.T) {
	log := logging.NewLoggerFromEnv("prod")

	log.SetLevel(logging.WarnLevel)

	assert.Equal(t, logging.WarnLevel, log.GetLevel())
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
