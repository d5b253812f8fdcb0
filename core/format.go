package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BitcoinDecimals int32 = 8
	StacksDecimals  int32 = 6
)

// FormatMinor renders integer minor units as a fixed-precision decimal
// string, e.g. 500000000 sats -> "5.00000000".
func FormatMinor(units int64, decimals int32) string {
	return decimal.New(units, -decimals).StringFixed(decimals)
}

func FormatBTC(sats int64) string {
	return FormatMinor(sats, BitcoinDecimals)
}

func FormatSTX(microSTX int64) string {
	return FormatMinor(microSTX, StacksDecimals)
}

// TruncateAddress shortens an address to a start…end window for display.
func TruncateAddress(address string, start, end int) string {
	if len(address) <= start+end {
		return address
	}
	return address[:start] + "..." + address[len(address)-end:]
}

// FormatBlockTime renders unix seconds as a date string; zero renders empty.
func FormatBlockTime(secs int64) string {
	if secs <= 0 {
		return ""
	}
	return time.Unix(secs, 0).UTC().Format("2006-01-02")
}
