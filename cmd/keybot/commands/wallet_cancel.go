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

	"github.com/spf13/cobra"
)

var (
	walletCancelLong = cli.LongDesc(`
		Cancel a payment sent to a user who has not set up a wallet yet. The
		money goes back to the account it was sent from.
	`)

	walletCancelExample = cli.Examples(`
		# Cancel a payment
		{{.Software}} wallet cancel TRANSACTION_ID
	`)
)

type WalletCancelHandler func(ctx context.Context, txID string) error

func NewCmdWalletCancel(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, txID string) error {
		_, err := withBot(ctx, rf, func(b *bot.Bot) (struct{}, error) {
			return struct{}{}, b.Wallet.Cancel(ctx, txID)
		})
		return err
	}

	return BuildCmdWalletCancel(w, h, rf)
}

func BuildCmdWalletCancel(w io.Writer, handler WalletCancelHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cancel TRANSACTION_ID",
		Short:   "Cancel a pending payment",
		Long:    walletCancelLong,
		Example: walletCancelExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := singleArg(args, "transaction ID")
			if err != nil {
				return err
			}

			if err := handler(cmd.Context(), txID); err != nil {
				return err
			}

			if rf.Output == flags.InteractiveOutput {
				p := printer.NewInteractivePrinter(w)
				p.Print(p.String().CheckMark().SuccessText("Payment ").BoldText(txID).SuccessText(" has been cancelled").NextLine())
			}

			return nil
		},
	}

	return cmd
}
