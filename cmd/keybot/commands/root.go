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
	"context"
	"fmt"
	"io"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/internal/logging"
	vgclose "code.vegaprotocol.io/keybot/libs/close"
	"code.vegaprotocol.io/keybot/metrics"

	"github.com/spf13/cobra"
)

var rootLong = cli.LongDesc(`
	Use the chat and the wallet of a Keybase user from the command line.

	Without --username, the commands act as the user the local keybase service
	is logged in with. With --username, the user is logged in with a paper key
	for the duration of the command, and logged out afterwards.
`)

type RootFlags struct {
	Output       string
	ConfigFile   string
	Home         string
	Binary       string
	LogLevel     string
	Username     string
	PaperkeyFile string
}

// Config loads the config file, and overrides it with the flags that are set.
func (f *RootFlags) Config() (bot.Config, error) {
	cfg, err := bot.LoadConfig(f.ConfigFile)
	if err != nil {
		return bot.Config{}, err
	}

	if len(f.Home) != 0 {
		cfg.Keybase.HomeDir = f.Home
	}

	if len(f.Binary) != 0 {
		cfg.Keybase.Binary = f.Binary
	}

	if len(f.LogLevel) != 0 {
		level, err := logging.ParseLevel(f.LogLevel)
		if err != nil {
			return bot.Config{}, err
		}
		cfg.Logging.Level.Level = level
	}

	return cfg, nil
}

func NewCmdRoot(w io.Writer) *cobra.Command {
	cmd, _ := newCmdRoot(w)
	return cmd
}

func newCmdRoot(w io.Writer) (*cobra.Command, *RootFlags) {
	f := &RootFlags{}

	cmd := &cobra.Command{
		Use:           "keybot",
		Short:         "Chat and pay from the command line",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := flags.ValidateOutput(f.Output); err != nil {
				return err
			}

			if len(f.LogLevel) != 0 {
				if _, err := logging.ParseLevel(f.LogLevel); err != nil {
					return flags.UnsupportedFlagValueError("level", f.LogLevel, logging.SupportedLevels)
				}
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&f.Output,
		"output", "o",
		flags.InteractiveOutput,
		fmt.Sprintf("Specify the output format: %v", flags.AvailableOutputs),
	)
	cmd.PersistentFlags().StringVar(&f.ConfigFile,
		"config",
		"",
		fmt.Sprintf("Path to the configuration file, defaults to %s in the XDG config home", bot.DefaultConfigFile),
	)
	cmd.PersistentFlags().StringVar(&f.Home,
		"home",
		"",
		"Home directory of the keybase service",
	)
	cmd.PersistentFlags().StringVar(&f.Binary,
		"binary",
		"",
		"Name or path of the keybase executable",
	)
	cmd.PersistentFlags().StringVar(&f.LogLevel,
		"level",
		"",
		fmt.Sprintf("Set the log level: %v", logging.SupportedLevels),
	)
	cmd.PersistentFlags().StringVarP(&f.Username,
		"username", "u",
		"",
		"User to log in with, instead of the one of the running service",
	)
	cmd.PersistentFlags().StringVar(&f.PaperkeyFile,
		"paperkey-file",
		"",
		"Path to the file containing the paper key of the user",
	)

	registerCompletions(cmd)

	cmd.AddCommand(NewCmdWallet(w, f))
	cmd.AddCommand(NewCmdChat(w, f))
	cmd.AddCommand(NewCmdConfig(w, f))
	cmd.AddCommand(NewCmdVersion(w, f))

	return cmd, f
}

// withBot runs fn with an initialized bot, and deinitializes it afterwards.
// When metrics are enabled, they are served until fn returns.
func withBot[T any](ctx context.Context, rf *RootFlags, fn func(*bot.Bot) (T, error)) (result T, err error) {
	var zero T

	if len(rf.Username) == 0 && len(rf.PaperkeyFile) != 0 {
		return zero, flags.MustBeSpecifiedError("username")
	}

	cfg, err := rf.Config()
	if err != nil {
		return zero, err
	}

	closer := vgclose.NewCloser()
	defer func() {
		if closeErr := closer.CloseAll(context.Background()); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	log := buildCmdLogger(rf.Output, cfg)
	closer.Add(func(context.Context) error {
		log.AtExit()
		return nil
	})

	var opts []bot.Option
	if cfg.Metrics.Enabled {
		recorder, err := metrics.NewRecorder()
		if err != nil {
			return zero, fmt.Errorf("couldn't initialise metrics: %w", err)
		}
		server := metrics.Start(log, cfg.Metrics, recorder)
		closer.Add(func(ctx context.Context) error {
			if err := server.Stop(ctx); err != nil {
				log.Warn("couldn't stop the metrics server", logging.Error(err))
			}
			return nil
		})
		opts = append(opts, bot.WithRecorder(recorder))
	}

	b, err := bot.New(log, cfg, opts...)
	if err != nil {
		return zero, err
	}

	if len(rf.Username) != 0 {
		paperkey, err := flags.GetPaperkey(rf.PaperkeyFile)
		if err != nil {
			return zero, err
		}
		if err := b.Init(ctx, rf.Username, paperkey); err != nil {
			return zero, err
		}
	} else if err := b.InitFromRunningService(ctx); err != nil {
		return zero, err
	}
	closer.Add(b.Deinit)

	return fn(b)
}
