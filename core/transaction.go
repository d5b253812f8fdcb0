package core

import (
	"math"
	"sort"
)

type TxStatus string

const (
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusPending   TxStatus = "pending"
)

// HistoryLimit caps every history fetch to the most recent records.
const HistoryLimit = 10

type TransactionRecord struct {
	TxID   string   `json:"txid"`
	Type   string   `json:"type"`
	Amount int64    `json:"amount"`
	Status TxStatus `json:"status"`
	// BlockTime is unix seconds; zero means unknown (unconfirmed records get
	// no fabricated timestamp).
	BlockTime int64 `json:"block_time"`
}

// CapHistory orders records newest first and truncates to HistoryLimit.
// A zero block time means the record is still unconfirmed, so it sorts ahead
// of everything mined.
func CapHistory(records []TransactionRecord) []TransactionRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return historyOrder(records[i]) > historyOrder(records[j])
	})
	if len(records) > HistoryLimit {
		records = records[:HistoryLimit]
	}
	return records
}

func historyOrder(r TransactionRecord) int64 {
	if r.BlockTime == 0 {
		return math.MaxInt64
	}
	return r.BlockTime
}
