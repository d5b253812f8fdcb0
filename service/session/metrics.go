package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK          = "ok"
	outcomeError       = "error"
	outcomeUnsupported = "unsupported"
	outcomeStale       = "stale"
)

var (
	connectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bitfolio",
		Subsystem: "session",
		Name:      "connects_total",
		Help:      "Wallet connect attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bitfolio",
		Subsystem: "session",
		Name:      "fetches_total",
		Help:      "Balance/asset/history fetches by provider, class, op and outcome.",
	}, []string{"provider", "class", "op", "outcome"})
)
