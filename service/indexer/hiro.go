package indexer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/bitfolio/bitfolio/core"
)

type StacksConfig struct {
	BaseURL string `valid:"url,required"`
}

func NewStacks(cfg StacksConfig, client *http.Client) (core.StacksIndexer, error) {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("validate stacks indexer config: %w", err)
	}

	return &stacksClient{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: client,
	}, nil
}

type stacksClient struct {
	base string
	http *http.Client
}

type stacksBalanceBody struct {
	STX struct {
		Balance string `json:"balance"`
		Locked  string `json:"locked"`
	} `json:"stx"`
}

func (c *stacksClient) AddressBalances(ctx context.Context, address string) (*core.StacksBalance, error) {
	var body stacksBalanceBody
	path := "/extended/v1/address/" + address + "/balances"
	if err := getJSON(ctx, c.http, c.base+path, &body); err != nil {
		return nil, err
	}

	available, err := microSTX(body.STX.Balance)
	if err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, "", fmt.Errorf("stx balance: %w", err))
	}
	locked, err := microSTX(body.STX.Locked)
	if err != nil {
		return nil, core.Wrap(core.ErrMalformedResponse, "", fmt.Errorf("stx locked: %w", err))
	}

	return &core.StacksBalance{Available: available, Locked: locked}, nil
}

type stacksTxsBody struct {
	Results []struct {
		TxID          string `json:"tx_id"`
		TxType        string `json:"tx_type"`
		FeeRate       string `json:"fee_rate"`
		TxStatus      string `json:"tx_status"`
		BurnBlockTime int64  `json:"burn_block_time"`
	} `json:"results"`
}

func (c *stacksClient) AddressTxs(ctx context.Context, address string) ([]core.StacksTx, error) {
	var body stacksTxsBody
	path := "/extended/v1/address/" + address + "/transactions"
	if err := getJSON(ctx, c.http, c.base+path, &body); err != nil {
		return nil, err
	}

	txs := make([]core.StacksTx, 0, len(body.Results))
	for _, tx := range body.Results {
		// unlike the balance figures above, the fee is incidental: a garbled
		// fee_rate degrades to zero instead of failing the whole page
		fee, _ := microSTX(tx.FeeRate)
		txs = append(txs, core.StacksTx{
			TxID:      tx.TxID,
			Type:      tx.TxType,
			Fee:       fee,
			Status:    tx.TxStatus,
			BlockTime: tx.BurnBlockTime,
		})
	}
	return txs, nil
}

// microSTX parses the indexer's decimal-string micro-STX amounts; empty
// strings count as zero.
func microSTX(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
