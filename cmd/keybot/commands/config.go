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

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var ErrConfigFileAlreadyExists = errors.New("the config file already exists, use --force to overwrite it")

var (
	configInitLong = cli.LongDesc(`
		Write the default configuration in the configuration file, so it can
		be edited.
	`)

	configInitExample = cli.Examples(`
		# Write the default configuration in the XDG config home
		{{.Software}} config init

		# Overwrite an existing configuration file
		{{.Software}} config init --config PATH --force
	`)

	configDescribeLong = cli.LongDesc(`
		Print the configuration in use, once the configuration file and the
		flags are applied onto the defaults.
	`)
)

func NewCmdConfig(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration",
		Long:  "Manage the configuration of the bot.",
	}

	cmd.AddCommand(NewCmdConfigInit(w, rf))
	cmd.AddCommand(NewCmdConfigDescribe(w, rf))
	return cmd
}

type ConfigInitResponse struct {
	Path string `json:"path"`
}

type ConfigInitHandler func(path string, force bool) (ConfigInitResponse, error)

func NewCmdConfigInit(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(path string, force bool) (ConfigInitResponse, error) {
		if len(path) == 0 {
			defaultPath, err := bot.DefaultConfigPath()
			if err != nil {
				return ConfigInitResponse{}, err
			}
			path = defaultPath
		}

		if !force {
			if _, err := os.Stat(path); err == nil {
				return ConfigInitResponse{}, ErrConfigFileAlreadyExists
			}
		}

		written, err := bot.WriteConfig(path, bot.DefaultConfig())
		if err != nil {
			return ConfigInitResponse{}, err
		}

		return ConfigInitResponse{Path: written}, nil
	}

	return BuildCmdConfigInit(w, h, rf)
}

func BuildCmdConfigInit(w io.Writer, handler ConfigInitHandler, rf *RootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write the default configuration",
		Long:    configInitLong,
		Example: configInitExample,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := handler(rf.ConfigFile, force)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				p := printer.NewInteractivePrinter(w)
				p.Print(p.String().CheckMark().SuccessText("Configuration written at ").BoldText(resp.Path).NextLine())
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force,
		"force", "f",
		false,
		"Overwrite the existing configuration file",
	)

	return cmd
}

func NewCmdConfigDescribe(w io.Writer, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the configuration in use",
		Long:  configDescribeLong,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := rf.Config()
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				if err := toml.NewEncoder(w).Encode(cfg); err != nil {
					return fmt.Errorf("couldn't format the configuration: %w", err)
				}
			case flags.JSONOutput:
				return printer.FprintJSON(w, cfg)
			}

			return nil
		},
	}
}
