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
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"
	"code.vegaprotocol.io/keybot/internal/logging"
	vgterm "code.vegaprotocol.io/keybot/libs/term"
	"code.vegaprotocol.io/keybot/session"

	"github.com/spf13/cobra"
)

// Error is how a failure is printed with the JSON output. Code is the error
// code reported by the local API, when there is one.
type Error struct {
	Err  string `json:"error"`
	Code int    `json:"code,omitempty"`
}

type Writer struct {
	Out io.Writer
	Err io.Writer
}

func Execute(w *Writer) {
	if code := Run(w, os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// Run executes the command line args and prints the error, if any, in the
// requested output. It returns the exit code.
func Run(w *Writer, args []string) int {
	c, rf := newCmdRoot(w.Out)
	c.SetArgs(args)
	c.SetOut(w.Out)
	c.SetErr(w.Err)

	execErr := c.Execute()
	if execErr == nil {
		return 0
	}

	switch {
	case errors.Is(execErr, flags.ErrUnsupportedOutput):
		_, _ = fmt.Fprintln(w.Err, execErr)
	case rf.Output == flags.JSONOutput:
		printErrorJSON(w.Err, execErr)
	default:
		printErrorInteractive(w, execErr)
	}

	return 1
}

func printErrorInteractive(w *Writer, execErr error) {
	if !vgterm.HasTTY() {
		_, _ = fmt.Fprintln(w.Err, execErr)
		return
	}

	p := printer.NewInteractivePrinter(w.Err)
	str := p.String().CrossMark().DangerText("Error: ").DangerText(execErr.Error()).NextLine()
	if errors.Is(execErr, session.ErrUninitialized) || errors.Is(execErr, session.ErrAuthenticationFailed) {
		str.Pad().Text("Is the keybase service running? Use --username to log in with a paper key.").NextLine()
	}
	p.Print(str)
}

func printErrorJSON(w io.Writer, execErr error) {
	out := Error{
		Err: execErr.Error(),
	}

	var transportErr *session.TransportError
	if errors.As(execErr, &transportErr) {
		out.Code = int(transportErr.Code)
	}

	if err := printer.FprintJSON(w, out); err != nil {
		_, _ = fmt.Fprintf(w, "couldn't print the error %q as JSON: %v\n", execErr, err)
	}
}

func registerCompletions(cmd *cobra.Command) {
	completions := map[string][]string{
		"level":  logging.SupportedLevels,
		"output": flags.AvailableOutputs,
	}

	for name, values := range completions {
		values := values
		err := cmd.RegisterFlagCompletionFunc(name, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		})
		if err != nil {
			panic(err)
		}
	}
}

// buildCmdLogger builds a console logger for humans, and a JSON logger for
// machines. Both write on stderr.
func buildCmdLogger(output string, cfg bot.Config) *logging.Logger {
	if output == flags.InteractiveOutput {
		cfg.Logging.Environment = "dev"
	} else {
		cfg.Logging.Environment = "prod"
	}
	return cfg.NewLogger()
}
