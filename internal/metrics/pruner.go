// Package metrics defines Prometheus collectors for the pruning service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

var (
	prunerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "utxo_pruner",
		Name:      "runs_total",
		Help:      "Count of pruning runs per pair and mode.",
	}, []string{"chain", "network", "mode", "status"})

	prunerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "utxo_pruner",
		Name:      "run_duration_seconds",
		Help:      "Duration of one pruning run for a pair and mode.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "network", "mode", "status"})

	prunerCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "utxo_pruner",
		Name:      "candidates_total",
		Help:      "Count of candidates driven through the cascade pipeline.",
	}, []string{"chain", "network", "mode", "status"})

	prunerCandidateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "utxo_pruner",
		Name:      "candidate_duration_seconds",
		Help:      "Duration of closure expansion plus cascade per candidate.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "network", "mode", "status"})

	prunerClosureSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "utxo_pruner",
		Name:      "closure_size",
		Help:      "Affected-set size per candidate.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 7),
	}, []string{"chain", "network", "mode"})
)

// Pruner tracks metrics for the pruning service.
type Pruner struct{}

// NewPruner creates a Pruner metrics collector.
func NewPruner() *Pruner {
	return &Pruner{}
}

// ObserveRun records the outcome and duration of one pair/mode run.
func (m Pruner) ObserveRun(chain model.Chain, network model.Network, mode string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	prunerRunsTotal.WithLabelValues(string(chain), string(network), mode, status).Inc()
	prunerRunDuration.WithLabelValues(string(chain), string(network), mode, status).
		Observe(time.Since(started).Seconds())
}

// ObserveCandidate records processing of one candidate transaction.
func (m Pruner) ObserveCandidate(chain model.Chain, network model.Network, mode string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	prunerCandidatesTotal.WithLabelValues(string(chain), string(network), mode, status).Inc()
	prunerCandidateDuration.WithLabelValues(string(chain), string(network), mode, status).
		Observe(time.Since(started).Seconds())
}

// ObserveClosureSize records the affected-set size of one candidate.
func (m Pruner) ObserveClosureSize(chain model.Chain, network model.Network, mode string, size int) {
	prunerClosureSize.WithLabelValues(string(chain), string(network), mode).
		Observe(float64(size))
}
