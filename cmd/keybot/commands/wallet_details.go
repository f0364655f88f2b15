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
	walletDetailsLong = cli.LongDesc(`
		Describe a single transaction.
	`)

	walletDetailsExample = cli.Examples(`
		# Describe a transaction
		{{.Software}} wallet details TRANSACTION_ID
	`)
)

type WalletDetailsHandler func(ctx context.Context, txID string) (wallet.Transaction, error)

func NewCmdWalletDetails(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, txID string) (wallet.Transaction, error) {
		return withBot(ctx, rf, func(b *bot.Bot) (wallet.Transaction, error) {
			return b.Wallet.Details(ctx, txID)
		})
	}

	return BuildCmdWalletDetails(w, h, rf)
}

func BuildCmdWalletDetails(w io.Writer, handler WalletDetailsHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "details TRANSACTION_ID",
		Short:   "Describe a transaction",
		Long:    walletDetailsLong,
		Example: walletDetailsExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := singleArg(args, "transaction ID")
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), txID)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				p := printer.NewInteractivePrinter(w)
				str := p.String()
				printTransaction(str, resp)
				p.Print(str)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	return cmd
}
