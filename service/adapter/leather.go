package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitfolio/bitfolio/core"
)

func NewLeather(host core.Host, bitcoin core.BitcoinIndexer, stacks core.StacksIndexer) core.ProviderAdapter {
	return &leather{
		host:    host,
		bitcoin: bitcoin,
		stacks:  stacks,
		caps:    capabilities{core.AssetBitcoin, core.AssetStacks},
	}
}

type leather struct {
	host    core.Host
	bitcoin core.BitcoinIndexer
	stacks  core.StacksIndexer
	caps    capabilities
}

func (a *leather) Connect(ctx context.Context) ([]core.AddressBinding, error) {
	h := a.host.Leather()
	if h == nil {
		return nil, notInstalled(core.ProviderLeather)
	}

	raw, err := h.Request(ctx, "getAddresses", nil)
	if err != nil {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderLeather, err)
	}

	var body struct {
		Result struct {
			Addresses []struct {
				Symbol    string `json:"symbol"`
				Type      string `json:"type"`
				Address   string `json:"address"`
				PublicKey string `json:"publicKey"`
			} `json:"addresses"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderLeather, err)
	}
	if len(body.Result.Addresses) == 0 {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderLeather,
			fmt.Errorf("no addresses received from wallet"))
	}

	bindings := make([]core.AddressBinding, 0, len(body.Result.Addresses))
	for _, addr := range body.Result.Addresses {
		bindings = append(bindings, core.AddressBinding{
			Address:   addr.Address,
			Purpose:   leatherPurpose(addr.Symbol, addr.Type),
			PublicKey: addr.PublicKey,
		})
	}
	return bindings, nil
}

// leatherPurpose maps Leather's symbol/output-type tags onto the canonical
// purposes. P2TR is treated as the ordinals address even though taproot is
// also used for plain payments; that is how the wallet tags it.
func leatherPurpose(symbol, outputType string) core.AddressPurpose {
	switch {
	case symbol == "BTC" && outputType == "p2wpkh":
		return core.PurposePayment
	case symbol == "BTC" && outputType == "p2tr":
		return core.PurposeOrdinals
	case symbol == "STX":
		return core.PurposeStacks
	default:
		return core.PurposePayment
	}
}

func (a *leather) Balance(ctx context.Context, addrs core.AddressList, class core.AssetClass) (core.BalanceSnapshot, error) {
	if !a.caps.supports(class) {
		return core.BalanceSnapshot{}, unsupported(core.ProviderLeather, class)
	}

	// Leather exposes no native balance call for either chain.
	if class == core.AssetStacks {
		return stacksBalance(ctx, core.ProviderLeather, a.stacks, addrs)
	}
	return indexerBalance(ctx, core.ProviderLeather, a.bitcoin, addrs)
}

func (a *leather) Assets(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.AssetItem, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderLeather, class)
	}
	return []core.AssetItem{}, nil
}

func (a *leather) History(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.TransactionRecord, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderLeather, class)
	}

	if class == core.AssetStacks {
		return stacksHistory(ctx, core.ProviderLeather, a.stacks, addrs)
	}
	return bitcoinHistory(ctx, core.ProviderLeather, a.bitcoin, addrs)
}
