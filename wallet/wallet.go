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

package wallet

import (
	"context"

	"code.vegaprotocol.io/keybot/libs/jsonapi"
	"code.vegaprotocol.io/keybot/session"
)

const apiName = "wallet"

// Wallet wraps the wallet API of the platform. For more details about the
// API, see `keybase wallet api`.
type Wallet struct {
	session *session.Session
}

func New(s *session.Session) *Wallet {
	return &Wallet{
		session: s,
	}
}

// Balances returns all the accounts owned by the current user. If there are
// no accounts, the slice is empty. Contrary to the other methods, an empty
// result is not an error.
func (w *Wallet) Balances(ctx context.Context) ([]Account, error) {
	if err := w.session.GuardInitialized(); err != nil {
		return nil, err
	}

	res, err := w.run(ctx, "balances", BalancesOptions{})
	if err != nil {
		return nil, err
	}

	accounts := []Account{}
	if jsonapi.IsEmpty(res) {
		return accounts, nil
	}

	if err := w.decode("balances", res, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// History returns the transactions of a single account. The API wraps each
// transaction in a `payment` envelope that is removed here.
func (w *Wallet) History(ctx context.Context, accountID string) ([]Transaction, error) {
	if err := w.session.GuardInitialized(); err != nil {
		return nil, err
	}

	res, err := w.run(ctx, "history", HistoryOptions{AccountID: accountID})
	if err != nil {
		return nil, err
	}

	if jsonapi.IsEmpty(res) {
		return nil, session.NewEmptyResponseError(apiName, "history")
	}

	envelopes := []paymentEnvelope{}
	if err := w.decode("history", res, &envelopes); err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(envelopes))
	for _, envelope := range envelopes {
		transactions = append(transactions, envelope.Payment)
	}

	return transactions, nil
}

// Details returns the details of a single transaction.
func (w *Wallet) Details(ctx context.Context, transactionID string) (Transaction, error) {
	if err := w.session.GuardInitialized(); err != nil {
		return Transaction{}, err
	}

	res, err := w.run(ctx, "details", DetailsOptions{TxID: transactionID})
	if err != nil {
		return Transaction{}, err
	}

	if jsonapi.IsEmpty(res) {
		return Transaction{}, session.NewEmptyResponseError(apiName, "details")
	}

	tx := Transaction{}
	if err := w.decode("details", res, &tx); err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

// Lookup returns the primary account ID of a user.
func (w *Wallet) Lookup(ctx context.Context, name string) (LookupResult, error) {
	if err := w.session.GuardInitialized(); err != nil {
		return LookupResult{}, err
	}

	res, err := w.run(ctx, "lookup", LookupOptions{Name: name})
	if err != nil {
		return LookupResult{}, err
	}

	if jsonapi.IsEmpty(res) {
		return LookupResult{}, session.NewEmptyResponseError(apiName, "lookup")
	}

	found := LookupResult{}
	if err := w.decode("lookup", res, &found); err != nil {
		return LookupResult{}, err
	}

	return found, nil
}

// Send sends money to the recipient. When the currency is not specified, the
// amount is expressed in NativeCurrency.
func (w *Wallet) Send(ctx context.Context, opts SendOptions) (Transaction, error) {
	if err := w.session.GuardInitialized(); err != nil {
		return Transaction{}, err
	}

	if opts.Currency == "" {
		opts.Currency = NativeCurrency
	}

	res, err := w.run(ctx, "send", opts)
	if err != nil {
		return Transaction{}, err
	}

	if jsonapi.IsEmpty(res) {
		return Transaction{}, session.NewEmptyResponseError(apiName, "send")
	}

	tx := Transaction{}
	if err := w.decode("send", res, &tx); err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

// Cancel cancels a payment sent to a user who has not set up a wallet yet.
// The money is returned to the sender's account.
func (w *Wallet) Cancel(ctx context.Context, transactionID string) error {
	if err := w.session.GuardInitialized(); err != nil {
		return err
	}

	res, err := w.run(ctx, "cancel", CancelOptions{TxID: transactionID})
	if err != nil {
		return err
	}

	if jsonapi.IsEmpty(res) {
		return session.NewEmptyResponseError(apiName, "cancel")
	}

	return nil
}

func (w *Wallet) run(ctx context.Context, method string, opts jsonapi.Options) (jsonapi.Result, error) {
	return w.session.RunAPICommand(ctx, jsonapi.Command{
		APIName: apiName,
		Method:  method,
		Options: opts,
	})
}

func (w *Wallet) decode(method string, res jsonapi.Result, out interface{}) error {
	if err := jsonapi.Decode(res, out); err != nil {
		return session.NewTransportError(jsonapi.Command{APIName: apiName, Method: method}, err)
	}
	return nil
}
