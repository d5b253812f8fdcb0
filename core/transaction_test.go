package core

import (
	"fmt"
	"testing"
)

func TestCapHistory(t *testing.T) {
	var records []TransactionRecord
	for i := 0; i < 15; i++ {
		records = append(records, TransactionRecord{
			TxID:      fmt.Sprintf("tx-%d", i),
			BlockTime: int64(1000 + i),
		})
	}

	got := CapHistory(records)

	if len(got) != HistoryLimit {
		t.Fatalf("len = %d, want %d", len(got), HistoryLimit)
	}
	if got[0].TxID != "tx-14" {
		t.Errorf("first record = %s, want tx-14 (newest)", got[0].TxID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].BlockTime > got[i-1].BlockTime {
			t.Errorf("records not newest-first at index %d", i)
		}
	}
}

func TestCapHistoryUnconfirmedFirst(t *testing.T) {
	records := []TransactionRecord{
		{TxID: "pending", Status: TxStatusPending, BlockTime: 0},
	}
	for i := 0; i < 12; i++ {
		records = append(records, TransactionRecord{
			TxID:      fmt.Sprintf("confirmed-%d", i),
			Status:    TxStatusConfirmed,
			BlockTime: int64(1000 + i),
		})
	}

	got := CapHistory(records)

	if len(got) != HistoryLimit {
		t.Fatalf("len = %d, want %d", len(got), HistoryLimit)
	}
	if got[0].TxID != "pending" {
		t.Errorf("first record = %s, want the unconfirmed one", got[0].TxID)
	}
	if got[1].TxID != "confirmed-11" {
		t.Errorf("second record = %s, want confirmed-11 (newest mined)", got[1].TxID)
	}
}

func TestCapHistoryShort(t *testing.T) {
	records := []TransactionRecord{
		{TxID: "a", BlockTime: 1},
		{TxID: "b", BlockTime: 3},
		{TxID: "c", BlockTime: 2},
	}

	got := CapHistory(records)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].TxID != "b" || got[1].TxID != "c" || got[2].TxID != "a" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestDeriveTotal(t *testing.T) {
	tests := []struct {
		name        string
		confirmed   int64
		unconfirmed int64
		want        int64
	}{
		{"both zero", 0, 0, 0},
		{"confirmed only", 500000000, 0, 500000000},
		{"both set", 100, 25, 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BalanceSnapshot{Confirmed: tt.confirmed, Unconfirmed: tt.unconfirmed}.DeriveTotal()
			if s.Total != tt.want {
				t.Errorf("Total = %d, want %d", s.Total, tt.want)
			}
		})
	}
}
