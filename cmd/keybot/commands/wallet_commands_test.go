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
	"context"
	"encoding/json"
	"errors"
	"testing"

	cmd "code.vegaprotocol.io/keybot/cmd/keybot/commands"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletCommands(t *testing.T) {
	t.Run("Listing balances prints the accounts", testWalletBalancesCommandPrintsAccounts)
	t.Run("Listing balances without account prints a notice", testWalletBalancesCommandWithoutAccountPrintsNotice)
	t.Run("Listing history forwards the account ID", testWalletHistoryCommandForwardsAccountID)
	t.Run("Listing history without account ID fails", testWalletHistoryCommandWithoutAccountIDFails)
	t.Run("Getting details prints the transaction", testWalletDetailsCommandPrintsTransaction)
	t.Run("Looking up a user prints the account", testWalletLookupCommandPrintsAccount)
	t.Run("Cancelling a payment prints a confirmation", testWalletCancelCommandPrintsConfirmation)
	t.Run("Cancelling a payment returns the handler error", testWalletCancelCommandReturnsHandlerError)
}

func testWalletBalancesCommandPrintsAccounts(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context) ([]wallet.Account, error) {
		return []wallet.Account{
			{
				AccountID: "GABC",
				Name:      "main",
				IsPrimary: true,
				Balance: []wallet.Balance{
					{Amount: "10.5", Asset: wallet.Asset{Type: "native"}},
				},
			},
		}, nil
	}
	c := cmd.BuildCmdWalletBalances(out, handler, &cmd.RootFlags{Output: flags.InteractiveOutput})
	c.SetArgs([]string{})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "main")
	assert.Contains(t, out.String(), "GABC")
	assert.Contains(t, out.String(), "10.5")
}

func testWalletBalancesCommandWithoutAccountPrintsNotice(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context) ([]wallet.Account, error) {
		return []wallet.Account{}, nil
	}
	c := cmd.BuildCmdWalletBalances(out, handler, &cmd.RootFlags{Output: flags.InteractiveOutput})
	c.SetArgs([]string{})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No account found")
}

func testWalletHistoryCommandForwardsAccountID(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	var received string
	handler := func(_ context.Context, accountID string) ([]wallet.Transaction, error) {
		received = accountID
		return []wallet.Transaction{
			{TxID: "t1", Amount: "5"},
		}, nil
	}
	c := cmd.BuildCmdWalletHistory(out, handler, &cmd.RootFlags{Output: flags.JSONOutput})
	c.SetArgs([]string{"GABC"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Equal(t, "GABC", received)
	var printed []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	require.Len(t, printed, 1)
	assert.Equal(t, "t1", printed[0]["txID"])
	assert.Equal(t, "5", printed[0]["amount"])
}

func testWalletHistoryCommandWithoutAccountIDFails(t *testing.T) {
	// given
	handler := func(_ context.Context, _ string) ([]wallet.Transaction, error) {
		t.Fatal("the handler should not be called")
		return nil, nil
	}
	c := cmd.BuildCmdWalletHistory(&bytes.Buffer{}, handler, &cmd.RootFlags{Output: flags.JSONOutput})
	c.SetArgs([]string{})
	c.SetErr(&bytes.Buffer{})

	// when
	err := c.Execute()

	// then
	assert.ErrorIs(t, err, flags.ArgMustBeSpecifiedError("account ID"))
}

func testWalletDetailsCommandPrintsTransaction(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context, txID string) (wallet.Transaction, error) {
		return wallet.Transaction{TxID: txID, Amount: "2", Currency: "XLM", Message: "coffee"}, nil
	}
	c := cmd.BuildCmdWalletDetails(out, handler, &cmd.RootFlags{Output: flags.InteractiveOutput})
	c.SetArgs([]string{"e5334601"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "e5334601")
	assert.Contains(t, out.String(), "coffee")
}

func testWalletLookupCommandPrintsAccount(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context, name string) (wallet.LookupResult, error) {
		return wallet.LookupResult{Username: name, AccountID: "GABC"}, nil
	}
	c := cmd.BuildCmdWalletLookup(out, handler, &cmd.RootFlags{Output: flags.JSONOutput})
	c.SetArgs([]string{"patrick"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	var printed wallet.LookupResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, wallet.LookupResult{Username: "patrick", AccountID: "GABC"}, printed)
}

func testWalletCancelCommandPrintsConfirmation(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	var received string
	handler := func(_ context.Context, txID string) error {
		received = txID
		return nil
	}
	c := cmd.BuildCmdWalletCancel(out, handler, &cmd.RootFlags{Output: flags.InteractiveOutput})
	c.SetArgs([]string{"e5334601"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Equal(t, "e5334601", received)
	assert.Contains(t, out.String(), "has been cancelled")
}

func testWalletCancelCommandReturnsHandlerError(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handlerErr := errors.New("payment already claimed")
	handler := func(_ context.Context, _ string) error {
		return handlerErr
	}
	c := cmd.BuildCmdWalletCancel(out, handler, &cmd.RootFlags{Output: flags.JSONOutput})
	c.SetArgs([]string{"e5334601"})
	c.SetErr(&bytes.Buffer{})

	// when
	err := c.Execute()

	// then
	assert.ErrorIs(t, err, handlerErr)
	assert.Empty(t, out.String())
}
