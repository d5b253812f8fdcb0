// Package indexer implements thin REST clients for the public explorer APIs
// the adapters fall back to when a wallet has no native balance or history
// call. No retries and no internal timeouts live here; the injected
// http.Client governs transport behavior.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/bitfolio/bitfolio/core"
)

type BitcoinConfig struct {
	BaseURL string `valid:"url,required"`
}

func NewBitcoin(cfg BitcoinConfig, client *http.Client) (core.BitcoinIndexer, error) {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("validate bitcoin indexer config: %w", err)
	}

	return &bitcoinClient{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: client,
	}, nil
}

type bitcoinClient struct {
	base string
	http *http.Client
}

type addressStatsBody struct {
	ChainStats struct {
		FundedTxoSum int64 `json:"funded_txo_sum"`
		SpentTxoSum  int64 `json:"spent_txo_sum"`
	} `json:"chain_stats"`
	MempoolStats struct {
		FundedTxoSum int64 `json:"funded_txo_sum"`
		SpentTxoSum  int64 `json:"spent_txo_sum"`
	} `json:"mempool_stats"`
}

func (c *bitcoinClient) AddressStats(ctx context.Context, address string) (*core.AddressStats, error) {
	var body addressStatsBody
	if err := c.get(ctx, "/address/"+address, &body); err != nil {
		return nil, err
	}

	return &core.AddressStats{
		FundedSum:        body.ChainStats.FundedTxoSum,
		SpentSum:         body.ChainStats.SpentTxoSum,
		MempoolFundedSum: body.MempoolStats.FundedTxoSum,
		MempoolSpentSum:  body.MempoolStats.SpentTxoSum,
	}, nil
}

type addressTxBody struct {
	TxID   string `json:"txid"`
	Fee    int64  `json:"fee"`
	Status struct {
		Confirmed bool  `json:"confirmed"`
		BlockTime int64 `json:"block_time"`
	} `json:"status"`
}

func (c *bitcoinClient) AddressTxs(ctx context.Context, address string) ([]core.BitcoinTx, error) {
	var body []addressTxBody
	if err := c.get(ctx, "/address/"+address+"/txs", &body); err != nil {
		return nil, err
	}

	txs := make([]core.BitcoinTx, 0, len(body))
	for _, tx := range body {
		txs = append(txs, core.BitcoinTx{
			TxID:      tx.TxID,
			Fee:       tx.Fee,
			Confirmed: tx.Status.Confirmed,
			BlockTime: tx.Status.BlockTime,
		})
	}
	return txs, nil
}

func (c *bitcoinClient) get(ctx context.Context, path string, out any) error {
	return getJSON(ctx, c.http, c.base+path, out)
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.Wrap(core.ErrIndexerUnavailable, "", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return core.Wrap(core.ErrIndexerUnavailable, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.WrapStatus(core.ErrIndexerUnavailable, resp.StatusCode,
			fmt.Errorf("GET %s", url))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return core.Wrap(core.ErrMalformedResponse, "", fmt.Errorf("decode %s: %w", url, err))
	}
	return nil
}
