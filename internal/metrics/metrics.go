// Package metrics holds the Prometheus collectors for the coin ledger and the
// progress tracker. They register on the default registry and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careercoin"

// Redemption outcomes.
const (
	OutcomeRedeemed     = "redeemed"
	OutcomeNotFound     = "not_found"
	OutcomeUnavailable  = "unavailable"
	OutcomeInsufficient = "insufficient_balance"
)

// Check-in outcomes.
const (
	OutcomeCheckedIn = "checked_in"
	OutcomeRepeated  = "already_checked_in"
)

var CoinsEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "coins_earned_total",
	Help:      "Coins credited to the ledger.",
})

var CoinsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "coins_redeemed_total",
	Help:      "Coins spent on reward items.",
})

var Redemptions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "redemptions_total",
	Help:      "Redemption attempts by outcome.",
}, []string{"outcome"})

var Balance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "balance",
	Help:      "Current coin balance.",
})

var StepsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "roadmap_steps_completed_total",
	Help:      "Roadmap steps moved from incomplete to complete.",
})

var CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "checkins_total",
	Help:      "Daily check-in attempts by outcome.",
}, []string{"outcome"})
