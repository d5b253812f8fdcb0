package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitfolio/bitfolio/core"
)

func NewUnisat(host core.Host) core.ProviderAdapter {
	return &unisat{
		host: host,
		caps: capabilities{core.AssetBitcoin, core.AssetOrdinals},
	}
}

type unisat struct {
	host core.Host
	caps capabilities
}

func (a *unisat) handle() (core.UnisatHandle, error) {
	h := a.host.Unisat()
	if h == nil {
		return nil, notInstalled(core.ProviderUnisat)
	}
	return h, nil
}

func (a *unisat) Connect(ctx context.Context) ([]core.AddressBinding, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	accounts, err := h.RequestAccounts(ctx)
	if err != nil {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderUnisat, err)
	}
	if len(accounts) == 0 {
		return nil, core.Wrap(core.ErrConnectionRejected, core.ProviderUnisat,
			fmt.Errorf("no addresses received from wallet"))
	}

	// Unisat hands back bare address strings with no purpose tags; they are
	// all payment addresses.
	bindings := make([]core.AddressBinding, 0, len(accounts))
	for _, address := range accounts {
		bindings = append(bindings, core.AddressBinding{
			Address: address,
			Purpose: core.PurposePayment,
		})
	}
	return bindings, nil
}

func (a *unisat) Balance(ctx context.Context, addrs core.AddressList, class core.AssetClass) (core.BalanceSnapshot, error) {
	if !a.caps.supports(class) {
		return core.BalanceSnapshot{}, unsupported(core.ProviderUnisat, class)
	}
	if class != core.AssetBitcoin {
		return core.BalanceSnapshot{}, unsupported(core.ProviderUnisat, class)
	}

	h, err := a.handle()
	if err != nil {
		return core.BalanceSnapshot{}, err
	}

	raw, err := h.GetBalance(ctx)
	if err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrBalanceUnavailable, core.ProviderUnisat, err)
	}

	var body struct {
		Confirmed   int64  `json:"confirmed"`
		Unconfirmed int64  `json:"unconfirmed"`
		Total       *int64 `json:"total"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return core.BalanceSnapshot{}, core.Wrap(core.ErrMalformedResponse, core.ProviderUnisat, err)
	}

	snapshot := core.BalanceSnapshot{Confirmed: body.Confirmed, Unconfirmed: body.Unconfirmed}
	if body.Total == nil {
		return snapshot.DeriveTotal(), nil
	}
	snapshot.Total = *body.Total
	return snapshot, nil
}

func (a *unisat) Assets(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.AssetItem, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderUnisat, class)
	}
	if class != core.AssetOrdinals {
		return []core.AssetItem{}, nil
	}

	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	raw, err := h.GetInscriptions(ctx)
	if err != nil {
		return nil, core.Wrap(core.ErrProviderUnavailable, core.ProviderUnisat, err)
	}

	var body struct {
		List []struct {
			InscriptionID string `json:"inscriptionId"`
			ContentType   string `json:"contentType"`
			ContentLength int64  `json:"contentLength"`
			Content       string `json:"content"`
		} `json:"list"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderUnisat, err)
	}

	items := make([]core.AssetItem, 0, len(body.List))
	for _, ins := range body.List {
		items = append(items, core.AssetItem{Ordinal: &core.OrdinalItem{
			ID:            ins.InscriptionID,
			ContentType:   ins.ContentType,
			ContentLength: ins.ContentLength,
			ContentURL:    ins.Content,
		}})
	}
	return items, nil
}

// History lists UTXOs, not transactions: that is what the wallet's API
// offers. Records are typed "UTXO" with no block time.
func (a *unisat) History(ctx context.Context, addrs core.AddressList, class core.AssetClass) ([]core.TransactionRecord, error) {
	if !a.caps.supports(class) {
		return nil, unsupported(core.ProviderUnisat, class)
	}

	h, err := a.handle()
	if err != nil {
		return nil, err
	}

	raw, err := h.GetBitcoinUtxos(ctx)
	if err != nil {
		return nil, core.Wrap(core.ErrProviderUnavailable, core.ProviderUnisat, err)
	}

	var utxos []struct {
		TxID     string `json:"txId"`
		Satoshis int64  `json:"satoshis"`
	}
	if err := json.Unmarshal(raw, &utxos); err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, core.ProviderUnisat, err)
	}

	records := make([]core.TransactionRecord, 0, len(utxos))
	for _, utxo := range utxos {
		records = append(records, core.TransactionRecord{
			TxID:   utxo.TxID,
			Type:   "UTXO",
			Amount: utxo.Satoshis,
			Status: core.TxStatusConfirmed,
		})
	}
	return core.CapHistory(records), nil
}
