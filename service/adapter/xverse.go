package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bitfolio/bitfolio/core"
)

func NewXverse(host core.Host, bitcoin core.BitcoinIndexer, stacks core.StacksIndexer) core.ProviderAdapter {
	return &xverse{
		host:    host,
		bitcoin: bitcoin,
		stacks:  stacks,
		caps: capabilities{
			core.AssetBitcoin, core.AssetStacks, core.AssetOrdinals, core.AssetRunes,
		},
	}
}

type xverse struct {
	host    core.Host
	bitcoin core.BitcoinIndexer
	stacks  core.StacksIndexer
	caps    capabilities
}

func (a *xverse) handle() (core.XverseHandle, error) {
	h := a.host.Xverse()
	if h == nil {
		return nil, notInstalled(core.ProviderXverse)
	}
	return h, nil
}

func (a *xverse) Connect(ctx context.Context) ([]core.AddressBinding, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	raw, err := h.Request(ctx, "getAccounts", map[string]any{
		"purposes": []core.AddressPurpose{core.PurposePayment, core.PurposeOrdinals, core.PurposeStacks},
		"message":  "Connect to Xverse wallet",
	})
	if err != nil {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderXverse, err)
	}

	var body struct {
		Result []struct {
			Address   string `json:"address"`
			Purpose   string `json:"purpose"`
			PublicKey string `json:"publicKey"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}
	if len(body.Result) == 0 {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderXverse,
			fmt.Errorf("no addresses received from wallet"))
	}

	bindings := make([]core.AddressBinding, 0, len(body.Result))
	for _, acc := range body.Result {
		bindings = append(bindings, core.AddressBinding{
			Address:   acc.Address,
			Purpose:   core.AddressPurpose(acc.Purpose),
			PublicKey: acc.PublicKey,
		})
	}
	return bindings, nil
}

func (a *xverse) Balance(ctx context.Context, addrs core.AddressList, class core.AssetClass) (core.BalanceSnapshot, error) {
	if !a.caps.supports(class) {
		return core.BalanceSnapshot{}, unsupported(core.ProviderXverse, class)
	}

	switch class {
	case core.AssetStacks:
		// Xverse has no native STX balance call; go through the indexer.
		return stacksBalance(ctx, core.ProviderXverse, a.stacks, addrs)
	case core.AssetBitcoin:
		return a.nativeBalance(ctx)
	default:
		return core.BalanceSnapshot{}, unsupported(core.ProviderXverse, class)
	}
}

func (a *xverse) nativeBalance(ctx context.Context) (core.BalanceSnapshot, error) {
	h, err := a.handle()
	if err != nil {
		return core.BalanceSnapshot{}, err
	}

	raw, err := h.Request(ctx, "getBalance", nil)
	if err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrBalanceUnavailable, core.ProviderXverse, err)
	}

	var body struct {
		Result struct {
			Confirmed   string  `json:"confirmed"`
			Unconfirmed string  `json:"unconfirmed"`
			Total       *string `json:"total"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}

	confirmed, err := parseSats(body.Result.Confirmed)
	if err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}
	unconfirmed, err := parseSats(body.Result.Unconfirmed)
	if err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}

	snapshot := core.BalanceSnapshot{Confirmed: confirmed, Unconfirmed: unconfirmed}
	if body.Result.Total == nil {
		return snapshot.DeriveTotal(), nil
	}

	total, err := parseSats(*body.Result.Total)
	if err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}
	snapshot.Total = total
	return snapshot, nil
}

func (a *xverse) Assets(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.AssetItem, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderXverse, class)
	}

	switch class {
	case core.AssetOrdinals:
		return a.ordinals(ctx)
	case core.AssetRunes:
		return a.runes(ctx)
	default:
		// Balance classes carry no asset items.
		return []core.AssetItem{}, nil
	}
}

func (a *xverse) ordinals(ctx context.Context) ([]core.AssetItem, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	raw, err := h.Request(ctx, "ord_getInscriptions", nil)
	if err != nil {
		return nil, core.Wrap(core.ErrProviderUnavailable, core.ProviderXverse, err)
	}

	var body struct {
		Result []struct {
			ID            string `json:"id"`
			ContentType   string `json:"content_type"`
			ContentLength int64  `json:"content_length"`
			ContentURL    string `json:"content_url"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}

	items := make([]core.AssetItem, 0, len(body.Result))
	for _, ins := range body.Result {
		items = append(items, core.AssetItem{Ordinal: &core.OrdinalItem{
			ID:            ins.ID,
			ContentType:   ins.ContentType,
			ContentLength: ins.ContentLength,
			ContentURL:    ins.ContentURL,
		}})
	}
	return items, nil
}

type xverseRune struct {
	Name     string `json:"name"`
	Balance  string `json:"balance"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// runes tolerates both payload shapes the wallet has shipped: a flat array
// of rune entries, or an object keyed by rune name.
func (a *xverse) runes(ctx context.Context) ([]core.AssetItem, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	raw, err := h.Request(ctx, "runes_getBalance", nil)
	if err != nil {
		return nil, core.Wrap(core.ErrProviderUnavailable, core.ProviderXverse, err)
	}

	var body struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}
	if len(body.Result) == 0 {
		return []core.AssetItem{}, nil
	}

	var list []xverseRune
	if err := json.Unmarshal(body.Result, &list); err == nil {
		return a.runeItems(list)
	}

	var keyed map[string]xverseRune
	if err := json.Unmarshal(body.Result, &keyed); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse, err)
	}

	list = make([]xverseRune, 0, len(keyed))
	for name, entry := range keyed {
		entry.Name = name
		if entry.Symbol == "" {
			entry.Symbol = name
		}
		list = append(list, entry)
	}
	return a.runeItems(list)
}

func (a *xverse) runeItems(list []xverseRune) ([]core.AssetItem, error) {
	items := make([]core.AssetItem, 0, len(list))
	for _, r := range list {
		balance := decimal.Zero
		if r.Balance != "" {
			var err error
			if balance, err = decimal.NewFromString(r.Balance); err != nil {
				return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderXverse,
					fmt.Errorf("rune %s balance: %w", r.Name, err))
			}
		}
		items = append(items, core.AssetItem{Rune: &core.RuneItem{
			Name:     r.Name,
			Balance:  balance,
			Symbol:   r.Symbol,
			Decimals: r.Decimals,
		}})
	}
	return items, nil
}

func (a *xverse) History(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.TransactionRecord, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderXverse, class)
	}

	if class == core.AssetStacks {
		return stacksHistory(ctx, core.ProviderXverse, a.stacks, addrs)
	}
	return bitcoinHistory(ctx, core.ProviderXverse, a.bitcoin, addrs)
}

func parseSats(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
