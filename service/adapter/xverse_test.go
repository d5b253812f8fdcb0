package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/bitfolio/bitfolio/core"
)

func TestXverseConnect(t *testing.T) {
	handle := &requestHandle{responses: map[string]string{
		"getAccounts": `{"result":[
			{"address":"bc1qpay","purpose":"payment","publicKey":"02aa"},
			{"address":"bc1pord","purpose":"ordinals","publicKey":"02bb"},
			{"address":"SP0","purpose":"stacks","publicKey":"02cc"}
		]}`,
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	bindings, err := a.Connect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 3 {
		t.Fatalf("len = %d, want 3", len(bindings))
	}
	if bindings[0].Purpose != core.PurposePayment || bindings[0].Address != "bc1qpay" {
		t.Errorf("payment binding = %+v", bindings[0])
	}
	if bindings[1].Purpose != core.PurposeOrdinals || bindings[2].Purpose != core.PurposeStacks {
		t.Errorf("purpose mapping wrong: %+v", bindings)
	}
}

func TestXverseConnectNotInstalled(t *testing.T) {
	a := NewXverse(&fakeHost{}, nil, nil)

	_, err := a.Connect(context.Background())
	if !core.IsKind(err, core.ErrProviderUnavailable) {
		t.Fatalf("kind = %q, want provider_unavailable", core.KindOf(err))
	}
}

func TestXverseConnectRejected(t *testing.T) {
	tests := []struct {
		name   string
		handle *requestHandle
	}{
		{
			name: "request refused",
			handle: &requestHandle{errs: map[string]error{
				"getAccounts": errors.New("user rejected the request"),
			}},
		},
		{
			name: "no addresses",
			handle: &requestHandle{responses: map[string]string{
				"getAccounts": `{"result":[]}`,
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewXverse(&fakeHost{xverse: tt.handle}, nil, nil)
			_, err := a.Connect(context.Background())
			if !core.IsKind(err, core.ErrConnectionRejected) {
				t.Errorf("kind = %q, want connection_rejected", core.KindOf(err))
			}
		})
	}
}

func TestXverseNativeBalance(t *testing.T) {
	tests := []struct {
		name string
		body string
		want core.BalanceSnapshot
	}{
		{
			name: "total supplied",
			body: `{"result":{"confirmed":"100","unconfirmed":"50","total":"175"}}`,
			want: core.BalanceSnapshot{Confirmed: 100, Unconfirmed: 50, Total: 175},
		},
		{
			name: "total derived",
			body: `{"result":{"confirmed":"500000000","unconfirmed":"2500"}}`,
			want: core.BalanceSnapshot{Confirmed: 500000000, Unconfirmed: 2500, Total: 500002500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := &requestHandle{responses: map[string]string{"getBalance": tt.body}}
			a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

			got, err := a.Balance(context.Background(), testAddrs, core.AssetBitcoin)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("snapshot = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestXverseBalanceMalformed(t *testing.T) {
	handle := &requestHandle{responses: map[string]string{
		"getBalance": `{"result":{"confirmed":"abc","unconfirmed":"0"}}`,
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	_, err := a.Balance(context.Background(), testAddrs, core.AssetBitcoin)
	if !core.IsKind(err, core.ErrMalformedResponse) {
		t.Fatalf("kind = %q, want malformed_response", core.KindOf(err))
	}
}

func TestXverseStacksBalance(t *testing.T) {
	stacks := &fakeStacksIndexer{balance: &core.StacksBalance{Available: 2500000, Locked: 1000000}}
	a := NewXverse(&fakeHost{xverse: &requestHandle{}}, nil, stacks)

	got, err := a.Balance(context.Background(), testAddrs, core.AssetStacks)
	if err != nil {
		t.Fatal(err)
	}
	want := core.BalanceSnapshot{Confirmed: 2500000, Unconfirmed: 1000000, Total: 3500000}
	if got != want {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
}

func TestXverseStacksBalanceNoAddress(t *testing.T) {
	a := NewXverse(&fakeHost{xverse: &requestHandle{}}, nil, &fakeStacksIndexer{})

	addrs := core.AddressList{{Address: "bc1qpay", Purpose: core.PurposePayment}}
	_, err := a.Balance(context.Background(), addrs, core.AssetStacks)
	if !core.IsKind(err, core.ErrBalanceUnavailable) {
		t.Fatalf("kind = %q, want balance_unavailable", core.KindOf(err))
	}
}

func TestXverseOrdinals(t *testing.T) {
	handle := &requestHandle{responses: map[string]string{
		"ord_getInscriptions": `{"result":[
			{"id":"abci0","content_type":"image/png","content_length":4096,"content_url":"https://ord/abci0"}
		]}`,
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	items, err := a.Assets(context.Background(), testAddrs, core.AssetOrdinals)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Ordinal == nil {
		t.Fatalf("items = %+v", items)
	}
	ord := items[0].Ordinal
	if ord.ID != "abci0" || ord.ContentType != "image/png" || ord.ContentLength != 4096 {
		t.Errorf("ordinal = %+v", ord)
	}
}

func TestXverseAssetsCallFailure(t *testing.T) {
	handle := &requestHandle{errs: map[string]error{
		"ord_getInscriptions": errors.New("wallet busy"),
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	_, err := a.Assets(context.Background(), testAddrs, core.AssetOrdinals)
	if !core.IsKind(err, core.ErrProviderUnavailable) {
		t.Fatalf("kind = %q, want provider_unavailable", core.KindOf(err))
	}
}

func TestXverseRunesArray(t *testing.T) {
	handle := &requestHandle{responses: map[string]string{
		"runes_getBalance": `{"result":[
			{"name":"UNCOMMON.GOODS","balance":"420000000000000000001","symbol":"G","decimals":18}
		]}`,
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	items, err := a.Assets(context.Background(), testAddrs, core.AssetRunes)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Rune == nil {
		t.Fatalf("items = %+v", items)
	}
	r := items[0].Rune
	// The balance exceeds float64's integer precision; decimal must keep it
	// lossless.
	if r.Balance.String() != "420000000000000000001" {
		t.Errorf("balance = %s, want 420000000000000000001", r.Balance)
	}
	if r.Name != "UNCOMMON.GOODS" || r.Symbol != "G" || r.Decimals != 18 {
		t.Errorf("rune = %+v", r)
	}
}

func TestXverseRunesKeyedObject(t *testing.T) {
	handle := &requestHandle{responses: map[string]string{
		"runes_getBalance": `{"result":{
			"DOG.GO.TO.THE.MOON":{"balance":"100000","decimals":5}
		}}`,
	}}
	a := NewXverse(&fakeHost{xverse: handle}, nil, nil)

	items, err := a.Assets(context.Background(), testAddrs, core.AssetRunes)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Rune == nil {
		t.Fatalf("items = %+v", items)
	}
	r := items[0].Rune
	if r.Name != "DOG.GO.TO.THE.MOON" {
		t.Errorf("name = %s", r.Name)
	}
	if r.Symbol != "DOG.GO.TO.THE.MOON" {
		t.Errorf("symbol fallback = %s, want rune name", r.Symbol)
	}
	if r.Balance.String() != "100000" || r.Decimals != 5 {
		t.Errorf("rune = %+v", r)
	}
}

func TestXverseBitcoinHistory(t *testing.T) {
	var txs []core.BitcoinTx
	for i := 0; i < 15; i++ {
		txs = append(txs, core.BitcoinTx{
			TxID:      string(rune('a' + i)),
			Fee:       100,
			Confirmed: true,
			BlockTime: int64(1000 + i),
		})
	}
	bitcoin := &fakeBitcoinIndexer{txs: txs}
	a := NewXverse(&fakeHost{xverse: &requestHandle{}}, bitcoin, nil)

	records, err := a.History(context.Background(), testAddrs, core.AssetBitcoin)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != core.HistoryLimit {
		t.Fatalf("len = %d, want %d", len(records), core.HistoryLimit)
	}
	if records[0].BlockTime != 1014 {
		t.Errorf("first record block time = %d, want newest 1014", records[0].BlockTime)
	}
}

func TestXverseStacksHistory(t *testing.T) {
	stacks := &fakeStacksIndexer{txs: []core.StacksTx{
		{TxID: "0xaa", Type: "token_transfer", Fee: 180, Status: "success", BlockTime: 1700000100},
		{TxID: "0xbb", Type: "contract_call", Fee: 90, Status: "pending"},
	}}
	a := NewXverse(&fakeHost{xverse: &requestHandle{}}, nil, stacks)

	records, err := a.History(context.Background(), testAddrs, core.AssetStacks)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d", len(records))
	}
	if records[0].Status != core.TxStatusConfirmed || records[0].TxID != "0xaa" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Status != core.TxStatusPending || records[1].BlockTime != 0 {
		t.Errorf("pending record = %+v", records[1])
	}
}

func TestXverseIndexerErrorCarriesProvider(t *testing.T) {
	bitcoin := &fakeBitcoinIndexer{
		txsErr: core.WrapStatus(core.ErrIndexerUnavailable, 503, errors.New("service unavailable")),
	}
	a := NewXverse(&fakeHost{xverse: &requestHandle{}}, bitcoin, nil)

	_, err := a.History(context.Background(), testAddrs, core.AssetBitcoin)
	var e *core.Error
	if !errors.As(err, &e) {
		t.Fatal("not a core.Error")
	}
	if e.Kind != core.ErrIndexerUnavailable || e.Status != 503 || e.Provider != core.ProviderXverse {
		t.Errorf("error = %+v", e)
	}
}
