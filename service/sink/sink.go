// Package sink provides the default display sink: every callback is written
// to the structured log. A real presentation layer replaces or wraps it.
package sink

import (
	"log/slog"

	"github.com/bitfolio/bitfolio/core"
)

func New(logger *slog.Logger) core.Sink {
	return &logSink{logger: logger.With("component", "sink")}
}

type logSink struct {
	logger *slog.Logger
}

func (s *logSink) OnConnectionChanged(state core.SessionState) {
	if state.Connected() {
		s.logger.Info("connection changed", "provider", state.Provider, "addresses", len(state.Addresses))
		return
	}
	s.logger.Info("connection changed", "provider", "none")
}

func (s *logSink) OnBalanceUpdated(class core.AssetClass, snapshot *core.BalanceSnapshot, err error) {
	if err != nil {
		s.logger.Warn("balance update failed", "class", class, "err", err)
		return
	}
	s.logger.Info("balance updated", "class", class,
		"confirmed", snapshot.Confirmed, "unconfirmed", snapshot.Unconfirmed, "total", snapshot.Total)
}

func (s *logSink) OnAssetsUpdated(class core.AssetClass, items []core.AssetItem, err error) {
	if err != nil {
		// An unsupported class is an expected empty-state, not an alarm.
		if core.IsKind(err, core.ErrCapabilityUnsupported) {
			s.logger.Info("assets unsupported", "class", class)
			return
		}
		s.logger.Warn("assets update failed", "class", class, "err", err)
		return
	}
	s.logger.Info("assets updated", "class", class, "count", len(items))
}

func (s *logSink) OnHistoryUpdated(class core.AssetClass, records []core.TransactionRecord, err error) {
	if err != nil {
		s.logger.Warn("history update failed", "class", class, "err", err)
		return
	}
	s.logger.Info("history updated", "class", class, "count", len(records))
}

func (s *logSink) OnToast(message string, severity core.Severity) {
	s.logger.Info("toast", "severity", severity, "message", message)
}

func (s *logSink) OnBackgroundError(op string, err error) {
	s.logger.Error("background error", "op", op, "err", err)
}
