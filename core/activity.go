package core

import (
	"context"
	"time"
)

// Activity journals one normalized transaction record observed during a
// history fetch.
type Activity struct {
	ID        uint64     `json:"id,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	Provider  ProviderID `json:"provider,omitempty"`
	Class     AssetClass `json:"class,omitempty"`
	TxID      string     `json:"txid,omitempty"`
	Type      string     `json:"type,omitempty"`
	Amount    int64      `json:"amount,omitempty"`
	Status    TxStatus   `json:"status,omitempty"`
	BlockTime int64      `json:"block_time,omitempty"`
}

type ActivityStore interface {
	Record(ctx context.Context, provider ProviderID, class AssetClass, records []TransactionRecord) error
	List(ctx context.Context, limit int) ([]*Activity, error)
}
