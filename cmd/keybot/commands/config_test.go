// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"code.vegaprotocol.io/keybot/bot"
	cmd "code.vegaprotocol.io/keybot/cmd/keybot/commands"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommands(t *testing.T) {
	t.Run("Initialising the config writes the defaults", testConfigInitWritesDefaults)
	t.Run("Initialising an existing config fails", testConfigInitExistingConfigFails)
	t.Run("Initialising an existing config with force succeeds", testConfigInitExistingConfigWithForceSucceeds)
	t.Run("Describing the config applies the flags", testConfigDescribeAppliesFlags)
}

func testConfigInitWritesDefaults(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "config.toml")
	out := &bytes.Buffer{}
	c := cmd.NewCmdConfigInit(out, &cmd.RootFlags{Output: flags.JSONOutput, ConfigFile: path})
	c.SetArgs([]string{})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	var printed cmd.ConfigInitResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, path, printed.Path)
	cfg, err := bot.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, bot.DefaultConfig(), cfg)
}

func testConfigInitExistingConfigFails(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keybase]\nbinary = \"/opt/keybase\"\n"), 0o600))
	c := cmd.NewCmdConfigInit(&bytes.Buffer{}, &cmd.RootFlags{Output: flags.JSONOutput, ConfigFile: path})
	c.SetArgs([]string{})
	c.SetErr(&bytes.Buffer{})

	// when
	err := c.Execute()

	// then
	assert.ErrorIs(t, err, cmd.ErrConfigFileAlreadyExists)
	cfg, err := bot.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/keybase", cfg.Keybase.Binary)
}

func testConfigInitExistingConfigWithForceSucceeds(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keybase]\nbinary = \"/opt/keybase\"\n"), 0o600))
	c := cmd.NewCmdConfigInit(&bytes.Buffer{}, &cmd.RootFlags{Output: flags.InteractiveOutput, ConfigFile: path})
	c.SetArgs([]string{"--force"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	cfg, err := bot.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, bot.DefaultConfig().Keybase.Binary, cfg.Keybase.Binary)
}

func testConfigDescribeAppliesFlags(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keybase]\nbinary = \"/opt/keybase\"\n"), 0o600))
	out := &bytes.Buffer{}
	c := cmd.NewCmdConfigDescribe(out, &cmd.RootFlags{
		Output:     flags.JSONOutput,
		ConfigFile: path,
		Home:       "/tmp/keybase-home",
	})
	c.SetArgs([]string{})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	var printed map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	keybase, ok := printed["Keybase"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/opt/keybase", keybase["Binary"])
	assert.Equal(t, "/tmp/keybase-home", keybase["HomeDir"])
}
