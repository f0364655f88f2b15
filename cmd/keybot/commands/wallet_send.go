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
	"strconv"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"
	"code.vegaprotocol.io/keybot/wallet"

	"github.com/spf13/cobra"
)

var (
	walletSendLong = cli.LongDesc(`
		Send money to a user. The amount is expressed in lumens (XLM), unless
		another currency is specified.
	`)

	walletSendExample = cli.Examples(`
		# Send 3.50 lumens to a user
		{{.Software}} wallet send RECIPIENT 3.50

		# Send the equivalent of 3.50 dollars to a user, with a message
		{{.Software}} wallet send RECIPIENT 3.50 --currency USD --message "Thanks!"
	`)
)

type WalletSendHandler func(context.Context, wallet.SendOptions) (wallet.Transaction, error)

func NewCmdWalletSend(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, opts wallet.SendOptions) (wallet.Transaction, error) {
		return withBot(ctx, rf, func(b *bot.Bot) (wallet.Transaction, error) {
			return b.Wallet.Send(ctx, opts)
		})
	}

	return BuildCmdWalletSend(w, h, rf)
}

func BuildCmdWalletSend(w io.Writer, handler WalletSendHandler, rf *RootFlags) *cobra.Command {
	f := &WalletSendFlags{}

	cmd := &cobra.Command{
		Use:     "send RECIPIENT AMOUNT",
		Short:   "Send money to a user",
		Long:    walletSendLong,
		Example: walletSendExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return flags.ArgMustBeSpecifiedError("recipient")
			case 1:
				return flags.ArgMustBeSpecifiedError("amount")
			case 2:
				f.Recipient = args[0]
				f.Amount = args[1]
			default:
				return flags.TooManyArgsError("recipient", "amount")
			}

			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintWalletSendResponse(w, req, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&f.Currency,
		"currency",
		"",
		"Currency of the amount, defaults to lumens (XLM)",
	)
	cmd.Flags().StringVarP(&f.Message,
		"message", "m",
		"",
		"Message attached to the payment",
	)

	return cmd
}

type WalletSendFlags struct {
	Recipient string
	Amount    string
	Currency  string
	Message   string
}

func (f *WalletSendFlags) Validate() (wallet.SendOptions, error) {
	if len(f.Recipient) == 0 {
		return wallet.SendOptions{}, flags.ArgMustBeSpecifiedError("recipient")
	}

	if len(f.Amount) == 0 {
		return wallet.SendOptions{}, flags.ArgMustBeSpecifiedError("amount")
	}

	amount, err := strconv.ParseFloat(f.Amount, 64)
	if err != nil || amount <= 0 {
		return wallet.SendOptions{}, flags.ArgMustBePositiveNumberError("amount")
	}

	return wallet.SendOptions{
		Recipient: f.Recipient,
		Amount:    f.Amount,
		Currency:  f.Currency,
		Message:   f.Message,
	}, nil
}

func PrintWalletSendResponse(w io.Writer, req wallet.SendOptions, tx wallet.Transaction) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	currency := req.Currency
	if currency == "" {
		currency = wallet.NativeCurrency
	}

	str.CheckMark().SuccessText("Sent ").BoldText(req.Amount + " " + currency).SuccessText(" to ").BoldText(req.Recipient).NextLine()
	if id := transactionID(tx); id != "" {
		str.Pad().Text("Transaction ID: ").DimText(id).NextLine()
	}
	if tx.Status != "" {
		str.Pad().Text("Status: ").Text(tx.Status).NextLine()
	}
}
