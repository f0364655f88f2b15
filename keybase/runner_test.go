package keybase_test

import (
	"context"
	"runtime"
	"testing"

	"code.vegaprotocol.io/keybot/keybase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	t.Run("Executing a binary feeds its standard input", testExecutingBinaryFeedsItsStandardInput)
	t.Run("Executing a failing binary returns its output and error", testExecutingFailingBinaryReturnsItsOutputAndError)
	t.Run("Executing an unknown binary fails", testExecutingUnknownBinaryFails)
}

func testExecutingBinaryFeedsItsStandardInput(t *testing.T) {
	// given
	runner := keybase.NewExecRunner("sh")

	// when
	out, err := runner.Execute(context.Background(), []string{"-c", "cat"}, []byte(`{"method":"list"}`))

	// then
	require.NoError(t, err)
	assert.Equal(t, `{"method":"list"}`, string(out))
}

func testExecutingFailingBinaryReturnsItsOutputAndError(t *testing.T) {
	// given
	runner := keybase.NewExecRunner("sh")

	// when
	out, err := runner.Execute(context.Background(), []string{"-c", "echo '{}'; echo 'not logged in' >&2; exit 3"}, nil)

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Equal(t, "{}\n", string(out))
}

func testExecutingUnknownBinaryFails(t *testing.T) {
	// given
	runner := keybase.NewExecRunner("keybot-does-not-exist")

	// when
	out, err := runner.Execute(context.Background(), nil, nil)

	// then
	assert.Error(t, err)
	assert.Empty(t, out)
}
