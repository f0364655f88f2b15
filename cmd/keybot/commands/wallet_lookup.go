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
	"io"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"
	"code.vegaprotocol.io/keybot/wallet"

	"github.com/spf13/cobra"
)

var (
	walletLookupLong = cli.LongDesc(`
		Look up the primary Stellar account of a user.
	`)

	walletLookupExample = cli.Examples(`
		# Look up the account of a user
		{{.Software}} wallet lookup USERNAME
	`)
)

type WalletLookupHandler func(ctx context.Context, name string) (wallet.LookupResult, error)

func NewCmdWalletLookup(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, name string) (wallet.LookupResult, error) {
		return withBot(ctx, rf, func(b *bot.Bot) (wallet.LookupResult, error) {
			return b.Wallet.Lookup(ctx, name)
		})
	}

	return BuildCmdWalletLookup(w, h, rf)
}

func BuildCmdWalletLookup(w io.Writer, handler WalletLookupHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lookup USERNAME",
		Short:   "Look up the account of a user",
		Long:    walletLookupLong,
		Example: walletLookupExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := singleArg(args, "username")
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), name)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				p := printer.NewInteractivePrinter(w)
				p.Print(p.String().BoldText(resp.Username).Text(" ").ListItem().Text(resp.AccountID).NextLine())
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	return cmd
}
