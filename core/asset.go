package core

import "github.com/shopspring/decimal"

// AssetItem is a tagged variant: exactly one of Ordinal or Rune is set.
type AssetItem struct {
	Ordinal *OrdinalItem `json:"ordinal,omitempty"`
	Rune    *RuneItem    `json:"rune,omitempty"`
}

type OrdinalItem struct {
	ID            string `json:"id"`
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
	ContentURL    string `json:"content_url"`
}

// RuneItem carries a fungible-token balance. Balance is kept as an
// arbitrary-precision decimal; rune supplies overflow float64.
type RuneItem struct {
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Symbol   string          `json:"symbol"`
	Decimals int             `json:"decimals"`
}
