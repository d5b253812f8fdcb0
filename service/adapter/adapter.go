// Package adapter normalizes the vendor wallet APIs behind one contract.
// Each adapter is stateless: it holds only the injected handle host and the
// indexer clients, and receives the session's bound addresses on every call.
package adapter

import (
	"context"
	"fmt"

	"github.com/bitfolio/bitfolio/core"
)

func NewSet(host core.Host, bitcoin core.BitcoinIndexer, stacks core.StacksIndexer) core.AdapterSet {
	return &set{
		adapters: map[core.ProviderID]core.ProviderAdapter{
			core.ProviderXverse:  NewXverse(host, bitcoin, stacks),
			core.ProviderLeather: NewLeather(host, bitcoin, stacks),
			core.ProviderUnisat:  NewUnisat(host),
		},
	}
}

type set struct {
	adapters map[core.ProviderID]core.ProviderAdapter
}

func (s *set) Adapter(id core.ProviderID) (core.ProviderAdapter, error) {
	a, ok := s.adapters[id]
	if !ok {
		return nil, core.Wrap(core.ErrProviderUnavailable, id, fmt.Errorf("unknown provider"))
	}
	return a, nil
}

type capabilities []core.AssetClass

func (c capabilities) supports(class core.AssetClass) bool {
	for _, v := range c {
		if v == class {
			return true
		}
	}
	return false
}

func unsupported(id core.ProviderID, class core.AssetClass) error {
	return core.Wrap(core.ErrCapabilityUnsupported, id,
		fmt.Errorf("%s not supported by this wallet provider", class))
}

func notInstalled(id core.ProviderID) error {
	return core.Wrap(core.ErrProviderUnavailable, id, fmt.Errorf("wallet extension not installed"))
}

func noAddress(id core.ProviderID, purpose core.AddressPurpose) error {
	return core.Wrap(core.ErrBalanceUnavailable, id, fmt.Errorf("no %s address bound", purpose))
}

// indexerBalance computes a snapshot from the explorer's funded/spent totals
// for the session's payment address.
func indexerBalance(ctx context.Context, id core.ProviderID, bitcoin core.BitcoinIndexer, addrs core.AddressList) (core.BalanceSnapshot, error) {
	addr, ok := addrs.ForPurpose(core.PurposePayment)
	if !ok {
		return core.BalanceSnapshot{}, noAddress(id, core.PurposePayment)
	}

	stats, err := bitcoin.AddressStats(ctx, addr.Address)
	if err != nil {
		return core.BalanceSnapshot{}, core.WithProvider(err, id, core.ErrIndexerUnavailable)
	}

	return core.BalanceSnapshot{
		Confirmed:   stats.FundedSum - stats.SpentSum,
		Unconfirmed: stats.MempoolFundedSum - stats.MempoolSpentSum,
	}.DeriveTotal(), nil
}

func stacksBalance(ctx context.Context, id core.ProviderID, stacks core.StacksIndexer, addrs core.AddressList) (core.BalanceSnapshot, error) {
	addr, ok := addrs.ForPurpose(core.PurposeStacks)
	if !ok {
		return core.BalanceSnapshot{}, noAddress(id, core.PurposeStacks)
	}

	bal, err := stacks.AddressBalances(ctx, addr.Address)
	if err != nil {
		return core.BalanceSnapshot{}, core.WithProvider(err, id, core.ErrIndexerUnavailable)
	}

	return core.BalanceSnapshot{
		Confirmed:   bal.Available,
		Unconfirmed: bal.Locked,
	}.DeriveTotal(), nil
}

func bitcoinHistory(ctx context.Context, id core.ProviderID, bitcoin core.BitcoinIndexer, addrs core.AddressList) ([]core.TransactionRecord, error) {
	addr, ok := addrs.ForPurpose(core.PurposePayment)
	if !ok {
		return nil, noAddress(id, core.PurposePayment)
	}

	txs, err := bitcoin.AddressTxs(ctx, addr.Address)
	if err != nil {
		return nil, core.WithProvider(err, id, core.ErrIndexerUnavailable)
	}

	records := make([]core.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		status := core.TxStatusPending
		blockTime := int64(0)
		if tx.Confirmed {
			status = core.TxStatusConfirmed
			blockTime = tx.BlockTime
		}
		records = append(records, core.TransactionRecord{
			TxID:      tx.TxID,
			Type:      "bitcoin",
			Amount:    tx.Fee,
			Status:    status,
			BlockTime: blockTime,
		})
	}
	return core.CapHistory(records), nil
}

func stacksHistory(ctx context.Context, id core.ProviderID, stacks core.StacksIndexer, addrs core.AddressList) ([]core.TransactionRecord, error) {
	addr, ok := addrs.ForPurpose(core.PurposeStacks)
	if !ok {
		return nil, noAddress(id, core.PurposeStacks)
	}

	txs, err := stacks.AddressTxs(ctx, addr.Address)
	if err != nil {
		return nil, core.WithProvider(err, id, core.ErrIndexerUnavailable)
	}

	records := make([]core.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, core.TransactionRecord{
			TxID:      tx.TxID,
			Type:      tx.Type,
			Amount:    tx.Fee,
			Status:    stacksStatus(tx.Status),
			BlockTime: tx.BlockTime,
		})
	}
	return core.CapHistory(records), nil
}

// stacksStatus folds the indexer's status vocabulary onto ours; unknown
// values pass through untouched.
func stacksStatus(s string) core.TxStatus {
	switch s {
	case "success":
		return core.TxStatusConfirmed
	case "pending":
		return core.TxStatusPending
	default:
		return core.TxStatus(s)
	}
}
