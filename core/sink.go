package core

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Sink receives every state transition and fetch outcome. The presentation
// layer implements it; the core never renders anything itself.
//
// OnBackgroundError is the catch-all path: failures whose caller discarded
// the result (background refreshes, stale fetches) land here so no error is
// silently lost.
type Sink interface {
	OnConnectionChanged(state SessionState)
	OnBalanceUpdated(class AssetClass, snapshot *BalanceSnapshot, err error)
	OnAssetsUpdated(class AssetClass, items []AssetItem, err error)
	OnHistoryUpdated(class AssetClass, records []TransactionRecord, err error)
	OnToast(message string, severity Severity)
	OnBackgroundError(op string, err error)
}
