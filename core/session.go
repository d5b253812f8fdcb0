package core

import "context"

// SessionState is the observable half of the wallet session. An empty
// Provider means disconnected; Provider and Addresses are always set and
// cleared together.
type SessionState struct {
	Provider  ProviderID  `json:"provider,omitempty"`
	Addresses AddressList `json:"addresses,omitempty"`
}

func (s SessionState) Connected() bool { return s.Provider != "" }

// Session is the single process-wide wallet connection. Fetch operations
// dispatch to the bound provider adapter and update the per-class cache slot
// on success only; a failed fetch leaves the previous slot untouched.
type Session interface {
	Connect(ctx context.Context, id ProviderID) (SessionState, error)
	Disconnect(ctx context.Context)
	// Restore re-connects to the provider persisted by the previous run, if
	// it is still detected. Missing state is not an error.
	Restore(ctx context.Context) error
	State() SessionState

	FetchBalance(ctx context.Context, class AssetClass) (BalanceSnapshot, error)
	FetchAssets(ctx context.Context, class AssetClass) ([]AssetItem, error)
	FetchHistory(ctx context.Context, class AssetClass) ([]TransactionRecord, error)

	// Cached accessors expose the last successful fetch per class; stale data
	// survives a failed refresh until disconnect clears everything.
	CachedBalance(class AssetClass) (BalanceSnapshot, bool)
	CachedAssets(class AssetClass) ([]AssetItem, bool)
	CachedHistory(class AssetClass) ([]TransactionRecord, bool)
	// RefreshAll re-fetches balances and history for every asset class the
	// connected provider supports. Per-class failures flow through the sink;
	// the first one is returned.
	RefreshAll(ctx context.Context) error
}
