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
	walletBalancesLong = cli.LongDesc(`
		List the accounts owned by the user, with their balances.
	`)

	walletBalancesExample = cli.Examples(`
		# List the accounts of the user the service is logged in with
		{{.Software}} wallet balances

		# List the accounts of another user
		{{.Software}} wallet balances --username USERNAME --paperkey-file PAPERKEY_FILE
	`)
)

type WalletBalancesHandler func(context.Context) ([]wallet.Account, error)

func NewCmdWalletBalances(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context) ([]wallet.Account, error) {
		return withBot(ctx, rf, func(b *bot.Bot) ([]wallet.Account, error) {
			return b.Wallet.Balances(ctx)
		})
	}

	return BuildCmdWalletBalances(w, h, rf)
}

func BuildCmdWalletBalances(w io.Writer, handler WalletBalancesHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "balances",
		Short:   "List the accounts of the user",
		Long:    walletBalancesLong,
		Example: walletBalancesExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := handler(cmd.Context())
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintWalletBalancesResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	return cmd
}

func PrintWalletBalancesResponse(w io.Writer, accounts []wallet.Account) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	if len(accounts) == 0 {
		str.BangMark().Text("No account found").NextLine()
		return
	}

	for i, account := range accounts {
		if i != 0 {
			str.NextLine()
		}
		str.BoldText(account.Name)
		if account.IsPrimary {
			str.Text(" ").SuccessText("(primary)")
		}
		str.NextLine()
		str.Pad().Text("Account ID: ").DimText(account.AccountID).NextLine()
		for _, balance := range account.Balance {
			str.Pad().ListItem().Text(balance.Amount).Text(" ").Text(assetName(balance.Asset)).NextLine()
		}
		if account.ExchangeRate.Currency != "" {
			str.Pad().Text("Exchange rate: ").Text(account.ExchangeRate.Rate).Text(" ").Text(account.ExchangeRate.Currency).NextLine()
		}
	}
}

func assetName(asset wallet.Asset) string {
	if asset.Type == "native" || asset.Code == "" {
		return wallet.NativeCurrency
	}
	return asset.Code
}
