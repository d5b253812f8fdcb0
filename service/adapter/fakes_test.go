package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitfolio/bitfolio/core"
)

type fakeHost struct {
	xverse  core.XverseHandle
	leather core.LeatherHandle
	unisat  core.UnisatHandle
}

func (h *fakeHost) Xverse() core.XverseHandle   { return h.xverse }
func (h *fakeHost) Leather() core.LeatherHandle { return h.leather }
func (h *fakeHost) Unisat() core.UnisatHandle   { return h.unisat }

// requestHandle serves canned raw responses keyed by method name.
type requestHandle struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (h *requestHandle) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	h.calls = append(h.calls, method)
	if err, ok := h.errs[method]; ok {
		return nil, err
	}
	body, ok := h.responses[method]
	if !ok {
		return nil, fmt.Errorf("unexpected method %q", method)
	}
	return json.RawMessage(body), nil
}

type fakeUnisatHandle struct {
	accounts        []string
	accountsErr     error
	balance         string
	inscriptions    string
	inscriptionsErr error
	utxos           string
	utxosErr        error
}

func (h *fakeUnisatHandle) RequestAccounts(ctx context.Context) ([]string, error) {
	return h.accounts, h.accountsErr
}

func (h *fakeUnisatHandle) GetBalance(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(h.balance), nil
}

func (h *fakeUnisatHandle) GetInscriptions(ctx context.Context) (json.RawMessage, error) {
	if h.inscriptionsErr != nil {
		return nil, h.inscriptionsErr
	}
	return json.RawMessage(h.inscriptions), nil
}

func (h *fakeUnisatHandle) GetBitcoinUtxos(ctx context.Context) (json.RawMessage, error) {
	if h.utxosErr != nil {
		return nil, h.utxosErr
	}
	return json.RawMessage(h.utxos), nil
}

type fakeBitcoinIndexer struct {
	stats    *core.AddressStats
	statsErr error
	txs      []core.BitcoinTx
	txsErr   error
}

func (f *fakeBitcoinIndexer) AddressStats(ctx context.Context, address string) (*core.AddressStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeBitcoinIndexer) AddressTxs(ctx context.Context, address string) ([]core.BitcoinTx, error) {
	return f.txs, f.txsErr
}

type fakeStacksIndexer struct {
	balance    *core.StacksBalance
	balanceErr error
	txs        []core.StacksTx
	txsErr     error
}

func (f *fakeStacksIndexer) AddressBalances(ctx context.Context, address string) (*core.StacksBalance, error) {
	return f.balance, f.balanceErr
}

func (f *fakeStacksIndexer) AddressTxs(ctx context.Context, address string) ([]core.StacksTx, error) {
	return f.txs, f.txsErr
}

var testAddrs = core.AddressList{
	{Address: "bc1qpayment", Purpose: core.PurposePayment},
	{Address: "bc1pordinals", Purpose: core.PurposeOrdinals},
	{Address: "SP000STACKS", Purpose: core.PurposeStacks},
}
