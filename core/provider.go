package core

import (
	"context"
	"encoding/json"
)

type ProviderID string

const (
	ProviderXverse  ProviderID = "xverse"
	ProviderLeather ProviderID = "leather"
	ProviderUnisat  ProviderID = "unisat"
)

type AssetClass string

const (
	AssetBitcoin  AssetClass = "bitcoin"
	AssetStacks   AssetClass = "stacks"
	AssetOrdinals AssetClass = "ordinals"
	AssetRunes    AssetClass = "runes"
)

// ProviderDescriptor is the static catalog entry for a wallet extension.
type ProviderDescriptor struct {
	ID           ProviderID   `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Capabilities []AssetClass `json:"capabilities"`
}

func (d ProviderDescriptor) Supports(class AssetClass) bool {
	for _, c := range d.Capabilities {
		if c == class {
			return true
		}
	}
	return false
}

type Registry interface {
	List() []ProviderDescriptor
	Detect(id ProviderID) bool
	Capabilities(id ProviderID) []AssetClass
}

// XverseHandle is the capability object the Xverse extension injects into the
// host. Request carries the raw vendor response; decoding stays in the adapter.
type XverseHandle interface {
	Request(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// LeatherHandle mirrors Leather's request surface.
type LeatherHandle interface {
	Request(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// UnisatHandle exposes Unisat's bespoke method names.
type UnisatHandle interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	GetBalance(ctx context.Context) (json.RawMessage, error)
	GetInscriptions(ctx context.Context) (json.RawMessage, error)
	GetBitcoinUtxos(ctx context.Context) (json.RawMessage, error)
}

// Host locates injected wallet handles. A nil handle means the extension is
// not installed.
type Host interface {
	Xverse() XverseHandle
	Leather() LeatherHandle
	Unisat() UnisatHandle
}

// ProviderAdapter normalizes one vendor API. Adapters are stateless: the
// session's bound addresses are passed in on every call.
type ProviderAdapter interface {
	Connect(ctx context.Context) ([]AddressBinding, error)
	Balance(ctx context.Context, addrs AddressList, class AssetClass) (BalanceSnapshot, error)
	Assets(ctx context.Context, addrs AddressList, class AssetClass) ([]AssetItem, error)
	History(ctx context.Context, addrs AddressList, class AssetClass) ([]TransactionRecord, error)
}

type AdapterSet interface {
	Adapter(id ProviderID) (ProviderAdapter, error)
}
