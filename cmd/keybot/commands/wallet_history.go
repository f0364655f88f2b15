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
	walletHistoryLong = cli.LongDesc(`
		List the transactions of an account, most recent first.
	`)

	walletHistoryExample = cli.Examples(`
		# List the transactions of an account
		{{.Software}} wallet history ACCOUNT_ID
	`)
)

type WalletHistoryHandler func(ctx context.Context, accountID string) ([]wallet.Transaction, error)

func NewCmdWalletHistory(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, accountID string) ([]wallet.Transaction, error) {
		return withBot(ctx, rf, func(b *bot.Bot) ([]wallet.Transaction, error) {
			return b.Wallet.History(ctx, accountID)
		})
	}

	return BuildCmdWalletHistory(w, h, rf)
}

func BuildCmdWalletHistory(w io.Writer, handler WalletHistoryHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history ACCOUNT_ID",
		Short:   "List the transactions of an account",
		Long:    walletHistoryLong,
		Example: walletHistoryExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := singleArg(args, "account ID")
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), accountID)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintWalletTransactions(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	return cmd
}

func PrintWalletTransactions(w io.Writer, transactions []wallet.Transaction) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	if len(transactions) == 0 {
		str.BangMark().Text("No transaction found").NextLine()
		return
	}

	for _, tx := range transactions {
		printTransaction(str, tx)
	}
}

func printTransaction(str *printer.FormattedString, tx wallet.Transaction) {
	str.ListItem().BoldText(tx.Amount)
	if tx.Currency != "" {
		str.Text(" ").BoldText(tx.Currency)
	}
	if tx.Status != "" {
		str.Text(" ").DimText("(" + tx.Status + ")")
	}
	str.NextLine()

	if id := transactionID(tx); id != "" {
		str.Pad().Text("Transaction ID: ").DimText(id).NextLine()
	}
	if tx.Message != "" {
		str.Pad().Text("Message: ").Text(tx.Message).NextLine()
	}
}

func transactionID(tx wallet.Transaction) string {
	if tx.TxID != "" {
		return tx.TxID
	}
	return tx.ID
}

// singleArg returns the only positional argument of a command.
func singleArg(args []string, name string) (string, error) {
	if len(args) == 0 {
		return "", flags.ArgMustBeSpecifiedError(name)
	}
	if len(args) > 1 {
		return "", flags.TooManyArgsError(name)
	}
	return args[0], nil
}
