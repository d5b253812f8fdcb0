package core

import "context"

// AddressStats are the funded/spent totals a bitcoin-style explorer keeps per
// address, split between confirmed chain state and the mempool.
type AddressStats struct {
	FundedSum        int64
	SpentSum         int64
	MempoolFundedSum int64
	MempoolSpentSum  int64
}

type BitcoinTx struct {
	TxID      string
	Fee       int64
	Confirmed bool
	BlockTime int64
}

type BitcoinIndexer interface {
	AddressStats(ctx context.Context, address string) (*AddressStats, error)
	AddressTxs(ctx context.Context, address string) ([]BitcoinTx, error)
}

// StacksBalance is in micro-STX.
type StacksBalance struct {
	Available int64
	Locked    int64
}

type StacksTx struct {
	TxID      string
	Type      string
	Fee       int64
	Status    string
	BlockTime int64
}

type StacksIndexer interface {
	AddressBalances(ctx context.Context, address string) (*StacksBalance, error)
	AddressTxs(ctx context.Context, address string) ([]StacksTx, error)
}
