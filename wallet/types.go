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
	"code.vegaprotocol.io/keybot/libs/jsonapi"
)

// NativeCurrency is the asset used when a payment does not specify one.
const NativeCurrency = "XLM"

type Asset struct {
	Type   string `json:"type" mapstructure:"type"`
	Code   string `json:"code" mapstructure:"code"`
	Issuer string `json:"issuer" mapstructure:"issuer"`
}

type Balance struct {
	Asset  Asset  `json:"asset" mapstructure:"asset"`
	Amount string `json:"amount" mapstructure:"amount"`
	Limit  string `json:"limit" mapstructure:"limit"`
}

type ExchangeRate struct {
	Currency string `json:"currency" mapstructure:"currency"`
	Rate     string `json:"rate" mapstructure:"rate"`
}

// Account is an account owned by the current user, with its balances.
type Account struct {
	AccountID    string       `json:"accountID" mapstructure:"accountID"`
	Name         string       `json:"name" mapstructure:"name"`
	IsPrimary    bool         `json:"isPrimary" mapstructure:"isPrimary"`
	Balance      []Balance    `json:"balance" mapstructure:"balance"`
	ExchangeRate ExchangeRate `json:"exchangeRate" mapstructure:"exchangeRate"`

	// Extra holds the members returned by the API this type does not name.
	Extra map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	type account Account
	return jsonapi.MarshalWithExtra(account(a), a.Extra)
}

// Transaction describes a payment. The API returns more details than the ones
// listed here. They are kept in Extra.
type Transaction struct {
	ID        string `json:"id,omitempty" mapstructure:"id"`
	TxID      string `json:"txID,omitempty" mapstructure:"txID"`
	AccountID string `json:"accountId,omitempty" mapstructure:"accountId"`
	Amount    string `json:"amount,omitempty" mapstructure:"amount"`
	Currency  string `json:"currency,omitempty" mapstructure:"currency"`
	Message   string `json:"message,omitempty" mapstructure:"message"`
	Status    string `json:"status,omitempty" mapstructure:"status"`

	Extra map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	type transaction Transaction
	return jsonapi.MarshalWithExtra(transaction(t), t.Extra)
}

// LookupResult is the primary account of a user.
type LookupResult struct {
	AccountID string `json:"accountID" mapstructure:"accountID"`
	Username  string `json:"username" mapstructure:"username"`
}

// paymentEnvelope is how the history method wraps each transaction.
type paymentEnvelope struct {
	Payment Transaction `mapstructure:"payment"`
}

type BalancesOptions struct{}

type HistoryOptions struct {
	AccountID string `json:"accountId"`
}

type DetailsOptions struct {
	TxID string `json:"txid"`
}

type LookupOptions struct {
	Name string `json:"name"`
}

type SendOptions struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	// Currency defaults to NativeCurrency.
	Currency string `json:"currency,omitempty"`
	Message  string `json:"message,omitempty"`
}

type CancelOptions struct {
	TxID string `json:"txid"`
}
