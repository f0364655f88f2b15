package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/libs/jsonapi"
	"code.vegaprotocol.io/keybot/session"
	"code.vegaprotocol.io/keybot/session/mocks"
	"code.vegaprotocol.io/keybot/wallet"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet(t *testing.T) {
	t.Run("Operations before initialization never reach the transport", testOperationsBeforeInitializationNeverReachTransport)
	t.Run("Listing balances decodes the accounts", testListingBalancesDecodesAccounts)
	t.Run("Listing balances without accounts returns an empty slice", testListingBalancesWithoutAccountsReturnsEmptySlice)
	t.Run("Getting history unwraps the payment envelopes", testGettingHistoryUnwrapsPaymentEnvelopes)
	t.Run("Unwrapping a wrapped transaction gives it back", testUnwrappingWrappedTransactionGivesItBack)
	t.Run("Getting details returns the transaction", testGettingDetailsReturnsTransaction)
	t.Run("Looking up a user returns the result unchanged", testLookingUpUserReturnsResultUnchanged)
	t.Run("Sending without currency defaults to the native one", testSendingWithoutCurrencyDefaultsToNativeOne)
	t.Run("Sending with currency and message forwards them", testSendingWithCurrencyAndMessageForwardsThem)
	t.Run("Cancelling a transaction returns nothing", testCancellingTransactionReturnsNothing)
	t.Run("Empty results are errors except for balances", testEmptyResultsAreErrorsExceptForBalances)
	t.Run("Transport failures are propagated", testTransportFailuresArePropagated)
	t.Run("Malformed results are transport errors", testMalformedResultsAreTransportErrors)
}

func testOperationsBeforeInitializationNeverReachTransport(t *testing.T) {
	tcs := []struct {
		name string
		call func(context.Context, *wallet.Wallet) error
	}{
		{
			name: "balances",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Balances(ctx)
				return err
			},
		}, {
			name: "history",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.History(ctx, "GDUKZH6Q3U5WQD4PDGZXYLJE3P76BDRDWPSALN4OUFEESI2QL5UZHCK")
				return err
			},
		}, {
			name: "details",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Details(ctx, "e5334601b9dc2a24")
				return err
			},
		}, {
			name: "lookup",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Lookup(ctx, "patrick")
				return err
			},
		}, {
			name: "send",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Send(ctx, wallet.SendOptions{Recipient: "patrick", Amount: "1"})
				return err
			},
		}, {
			name: "cancel",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				return w.Cancel(ctx, "e5334601b9dc2a24")
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// setup, the transport mock fails the test if it is called.
			w := newUninitializedWalletForTest(tt)

			// when
			err := tc.call(context.Background(), w.wallet)

			// then
			assert.ErrorIs(tt, err, session.ErrUninitialized)
		})
	}
}

func testListingBalancesDecodesAccounts(t *testing.T) {
	// given
	w := newWalletForTest(t)
	ctx := context.Background()
	raw := parseResult(t, `[{
		"accountID": "GABC",
		"name": "primary",
		"isPrimary": true,
		"balance": [{"asset": {"type": "native", "code": "", "issuer": ""}, "amount": "100.0000000", "limit": ""}],
		"exchangeRate": {"currency": "USD", "rate": "0.0772"},
		"accountMode": 0
	}]`)

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "balances",
		Options: wallet.BalancesOptions{},
	}).Times(1).Return(raw, nil)

	// when
	accounts, err := w.wallet.Balances(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "GABC", accounts[0].AccountID)
	assert.True(t, accounts[0].IsPrimary)
	assert.Equal(t, "100.0000000", accounts[0].Balance[0].Amount)
	assert.Equal(t, "native", accounts[0].Balance[0].Asset.Type)
	assert.Equal(t, wallet.ExchangeRate{Currency: "USD", Rate: "0.0772"}, accounts[0].ExchangeRate)
	assert.Equal(t, json.Number("0"), accounts[0].Extra["accountMode"])
}

func testListingBalancesWithoutAccountsReturnsEmptySlice(t *testing.T) {
	for _, raw := range []jsonapi.Result{nil, []interface{}{}} {
		// given
		w := newWalletForTest(t)

		// setup
		w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).Return(raw, nil)

		// when
		accounts, err := w.wallet.Balances(context.Background())

		// then
		require.NoError(t, err)
		assert.NotNil(t, accounts)
		assert.Empty(t, accounts)
	}
}

func testGettingHistoryUnwrapsPaymentEnvelopes(t *testing.T) {
	// given
	w := newWalletForTest(t)
	accountID := "GDUKZH6Q3U5WQD4PDGZXYLJE3P76BDRDWPSALN4OUFEESI2QL5UZHCK"

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "history",
		Options: wallet.HistoryOptions{AccountID: accountID},
	}).Times(1).Return(parseResult(t, `[{"payment": {"id": "t1", "amount": "5"}}]`), nil)

	// when
	transactions, err := w.wallet.History(context.Background(), accountID)

	// then
	require.NoError(t, err)
	assert.Equal(t, []wallet.Transaction{{ID: "t1", Amount: "5"}}, transactions)
	encoded, err := json.Marshal(transactions)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t1","amount":"5"}]`, string(encoded))
}

func testUnwrappingWrappedTransactionGivesItBack(t *testing.T) {
	transactions := []wallet.Transaction{
		{ID: "t1", Amount: "5"},
		{
			TxID:      "e5334601b9dc2a24",
			AccountID: "GABC",
			Amount:    "3.50",
			Currency:  "USD",
			Message:   "Shut up and take my money!",
			Status:    "completed",
			Extra: map[string]interface{}{
				"fromUsername": "alice",
				"time":         json.Number("1580000000123"),
			},
		},
	}

	for _, tx := range transactions {
		// given
		w := newWalletForTest(t)
		wrapped := wrapInPaymentEnvelope(t, tx)

		// setup
		w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).Return(wrapped, nil)

		// when
		unwrapped, err := w.wallet.History(context.Background(), "GABC")

		// then
		require.NoError(t, err)
		assert.Equal(t, []wallet.Transaction{tx}, unwrapped)
	}
}

func testGettingDetailsReturnsTransaction(t *testing.T) {
	// given
	w := newWalletForTest(t)
	txID := "e5334601b9dc2a24e031ffeec2fce37bb6a8b4b51fc711d16dec04d3e64976c4"

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "details",
		Options: wallet.DetailsOptions{TxID: txID},
	}).Times(1).Return(parseResult(t, `{"txID": "`+txID+`", "status": "completed", "amount": "1"}`), nil)

	// when
	tx, err := w.wallet.Details(context.Background(), txID)

	// then
	require.NoError(t, err)
	assert.Equal(t, wallet.Transaction{TxID: txID, Status: "completed", Amount: "1"}, tx)
}

func testLookingUpUserReturnsResultUnchanged(t *testing.T) {
	// given
	w := newWalletForTest(t)

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "lookup",
		Options: wallet.LookupOptions{Name: "patrick"},
	}).Times(1).Return(parseResult(t, `{"accountID": "GABC", "username": "patrick"}`), nil)

	// when
	found, err := w.wallet.Lookup(context.Background(), "patrick")

	// then
	require.NoError(t, err)
	assert.Equal(t, wallet.LookupResult{AccountID: "GABC", Username: "patrick"}, found)
}

func testSendingWithoutCurrencyDefaultsToNativeOne(t *testing.T) {
	// given
	w := newWalletForTest(t)

	// setup
	w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(func(_ context.Context, cmd jsonapi.Command) (jsonapi.Result, error) {
		assert.Equal(t, "send", cmd.Method)
		encoded, err := json.Marshal(cmd.Request())
		require.NoError(t, err)
		assert.JSONEq(t, `{"method":"send","params":{"version":1,"options":{"recipient":"nathunsmitty","amount":"3.50","currency":"XLM"}}}`, string(encoded))
		return parseResult(t, `{"txID": "abc", "status": "pending"}`), nil
	})

	// when
	tx, err := w.wallet.Send(context.Background(), wallet.SendOptions{
		Recipient: "nathunsmitty",
		Amount:    "3.50",
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "abc", tx.TxID)
	assert.Equal(t, "pending", tx.Status)
}

func testSendingWithCurrencyAndMessageForwardsThem(t *testing.T) {
	// given
	w := newWalletForTest(t)
	opts := wallet.SendOptions{
		Recipient: "nathunsmitty",
		Amount:    "3.50",
		Currency:  "USD",
		Message:   "Shut up and take my money!",
	}

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "send",
		Options: opts,
	}).Times(1).Return(parseResult(t, `{"txID": "abc"}`), nil)

	// when
	_, err := w.wallet.Send(context.Background(), opts)

	// then
	require.NoError(t, err)
}

func testCancellingTransactionReturnsNothing(t *testing.T) {
	// given
	w := newWalletForTest(t)

	// setup
	w.transport.EXPECT().Run(gomock.Any(), jsonapi.Command{
		APIName: "wallet",
		Method:  "cancel",
		Options: wallet.CancelOptions{TxID: "abc"},
	}).Times(1).Return(parseResult(t, `{"txID": "abc", "status": "canceled"}`), nil)

	// when
	err := w.wallet.Cancel(context.Background(), "abc")

	// then
	assert.NoError(t, err)
}

func testEmptyResultsAreErrorsExceptForBalances(t *testing.T) {
	tcs := []struct {
		name string
		call func(context.Context, *wallet.Wallet) error
	}{
		{
			name: "history",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.History(ctx, "GABC")
				return err
			},
		}, {
			name: "details",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Details(ctx, "abc")
				return err
			},
		}, {
			name: "lookup",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Lookup(ctx, "patrick")
				return err
			},
		}, {
			name: "send",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				_, err := w.Send(ctx, wallet.SendOptions{Recipient: "patrick", Amount: "1"})
				return err
			},
		}, {
			name: "cancel",
			call: func(ctx context.Context, w *wallet.Wallet) error {
				return w.Cancel(ctx, "abc")
			},
		},
	}

	for _, tc := range tcs {
		for _, empty := range []jsonapi.Result{nil, false, "", json.Number("0")} {
			t.Run(tc.name, func(tt *testing.T) {
				// given
				w := newWalletForTest(tt)

				// setup
				w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).Return(empty, nil)

				// when
				err := tc.call(context.Background(), w.wallet)

				// then
				require.ErrorIs(tt, err, session.ErrEmptyResponse)
				var emptyErr *session.EmptyResponseError
				require.True(tt, errors.As(err, &emptyErr))
				assert.Equal(tt, tc.name, emptyErr.Operation)
				assert.Equal(tt, "keybase wallet "+tc.name+" returned nothing", err.Error())
			})
		}
	}
}

func testTransportFailuresArePropagated(t *testing.T) {
	// given
	w := newWalletForTest(t)
	apiErr := jsonapi.ErrorDetails{Message: "account not found"}

	// setup
	w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).Return(nil, apiErr)

	// when
	_, err := w.wallet.History(context.Background(), "GABC")

	// then
	assert.ErrorIs(t, err, session.ErrTransportFailed)
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, "keybase wallet history failed: account not found", err.Error())
}

func testMalformedResultsAreTransportErrors(t *testing.T) {
	// given
	w := newWalletForTest(t)

	// setup
	w.transport.EXPECT().Run(gomock.Any(), gomock.Any()).Times(1).Return("not an object", nil)

	// when
	_, err := w.wallet.Lookup(context.Background(), "patrick")

	// then
	assert.ErrorIs(t, err, session.ErrTransportFailed)
}

type testWallet struct {
	wallet    *wallet.Wallet
	session   *session.Session
	transport *mocks.MockTransport
}

func newUninitializedWalletForTest(t *testing.T) *testWallet {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	s := session.New(logging.NewTestLogger(), transport)

	return &testWallet{
		wallet:    wallet.New(s),
		session:   s,
		transport: transport,
	}
}

func newWalletForTest(t *testing.T) *testWallet {
	t.Helper()

	w := newUninitializedWalletForTest(t)
	w.session.Open("alice")

	return w
}

func parseResult(t *testing.T, result string) jsonapi.Result {
	t.Helper()

	resp, err := jsonapi.ParseResponse([]byte(`{"result":` + result + `}`))
	if err != nil {
		t.Fatalf("could not parse result for test: %v", err)
	}

	return resp.Result
}

func wrapInPaymentEnvelope(t *testing.T, tx wallet.Transaction) jsonapi.Result {
	t.Helper()

	encoded, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("could not encode transaction for test: %v", err)
	}

	return parseResult(t, `[{"payment":`+string(encoded)+`}]`)
}
