package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitfolio/bitfolio/core"
)

func TestBitcoinAddressStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/address/bc1qtest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"chain_stats":{"funded_txo_sum":700000000,"spent_txo_sum":200000000},
			"mempool_stats":{"funded_txo_sum":1500,"spent_txo_sum":500}
		}`))
	}))
	defer srv.Close()

	c, err := NewBitcoin(BitcoinConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	stats, err := c.AddressStats(context.Background(), "bc1qtest")
	if err != nil {
		t.Fatal(err)
	}
	if stats.FundedSum != 700000000 || stats.SpentSum != 200000000 {
		t.Errorf("chain stats = %+v", stats)
	}
	if stats.MempoolFundedSum != 1500 || stats.MempoolSpentSum != 500 {
		t.Errorf("mempool stats = %+v", stats)
	}
}

func TestBitcoinAddressTxs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"txid":"aa","fee":120,"status":{"confirmed":true,"block_time":1700000000}},
			{"txid":"bb","fee":250,"status":{"confirmed":false}}
		]`))
	}))
	defer srv.Close()

	c, err := NewBitcoin(BitcoinConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	txs, err := c.AddressTxs(context.Background(), "bc1qtest")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("len = %d", len(txs))
	}
	if !txs[0].Confirmed || txs[0].BlockTime != 1700000000 {
		t.Errorf("first tx = %+v", txs[0])
	}
	if txs[1].Confirmed || txs[1].BlockTime != 0 {
		t.Errorf("second tx = %+v", txs[1])
	}
}

func TestBitcoinServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewBitcoin(BitcoinConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.AddressStats(context.Background(), "bc1qtest")
	if !core.IsKind(err, core.ErrIndexerUnavailable) {
		t.Fatalf("kind = %q, want indexer_unavailable", core.KindOf(err))
	}
	if core.StatusOf(err) != 503 {
		t.Errorf("status = %d, want 503", core.StatusOf(err))
	}
}

func TestBitcoinMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!doctype html>`))
	}))
	defer srv.Close()

	c, err := NewBitcoin(BitcoinConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.AddressStats(context.Background(), "bc1qtest")
	if !core.IsKind(err, core.ErrMalformedResponse) {
		t.Fatalf("kind = %q, want malformed_response", core.KindOf(err))
	}
}

func TestBitcoinConfigValidation(t *testing.T) {
	if _, err := NewBitcoin(BitcoinConfig{}, http.DefaultClient); err == nil {
		t.Error("empty base url must be rejected")
	}
	if _, err := NewBitcoin(BitcoinConfig{BaseURL: "not a url"}, http.DefaultClient); err == nil {
		t.Error("invalid base url must be rejected")
	}
}

func TestStacksAddressBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extended/v1/address/SP000/balances" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"stx":{"balance":"2500000123","locked":"1000000"}}`))
	}))
	defer srv.Close()

	c, err := NewStacks(StacksConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	bal, err := c.AddressBalances(context.Background(), "SP000")
	if err != nil {
		t.Fatal(err)
	}
	if bal.Available != 2500000123 || bal.Locked != 1000000 {
		t.Errorf("balance = %+v", bal)
	}
}

func TestStacksAddressTxs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"tx_id":"0xaa","tx_type":"token_transfer","fee_rate":"180","tx_status":"success","burn_block_time":1700000100}
		]}`))
	}))
	defer srv.Close()

	c, err := NewStacks(StacksConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	txs, err := c.AddressTxs(context.Background(), "SP000")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Fatalf("len = %d", len(txs))
	}
	tx := txs[0]
	if tx.TxID != "0xaa" || tx.Type != "token_transfer" || tx.Fee != 180 ||
		tx.Status != "success" || tx.BlockTime != 1700000100 {
		t.Errorf("tx = %+v", tx)
	}
}

func TestStacksEmptyAmounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stx":{"balance":"","locked":""}}`))
	}))
	defer srv.Close()

	c, err := NewStacks(StacksConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	bal, err := c.AddressBalances(context.Background(), "SP000")
	if err != nil {
		t.Fatal(err)
	}
	if bal.Available != 0 || bal.Locked != 0 {
		t.Errorf("balance = %+v, want zeros", bal)
	}
}

func TestStacksGarbledFeeKeepsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"tx_id":"0xbb","tx_type":"contract_call","fee_rate":"not-a-number","tx_status":"success","burn_block_time":1700000200}
		]}`))
	}))
	defer srv.Close()

	c, err := NewStacks(StacksConfig{BaseURL: srv.URL}, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	txs, err := c.AddressTxs(context.Background(), "SP000")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Fatalf("len = %d, want the record kept", len(txs))
	}
	if txs[0].Fee != 0 {
		t.Errorf("fee = %d, want 0 for an unparseable fee_rate", txs[0].Fee)
	}
}
