package metrics

import (
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"network", "status"})

	scannerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "block_duration_seconds",
		Help:      "Duration of processing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerBlockTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})

	scannerCommitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "batch_commits_total",
		Help:      "Count of store batch commits.",
	}, []string{"network", "status"})

	scannerCommitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "batch_commit_duration_seconds",
		Help:      "Duration of store batch commits.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerCommitOps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "batch_commit_ops",
		Help:      "Operations per committed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	scannerBlocksBehind = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "blocks_behind",
		Help:      "How far the store trails the node tip.",
	}, []string{"network"})

	scannerTaintingTxs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "tainting_transactions_total",
		Help:      "Count of transactions that spread taint.",
	}, []string{"network"})

	scannerTaintedOutputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "tainted_outputs_total",
		Help:      "Count of newly tainted outpoints.",
	}, []string{"network"})

	scannerTaintedAddresses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "scanner",
		Name:      "tainted_addresses_total",
		Help:      "Count of address taint record upserts.",
	}, []string{"network"})
)

// Scanner tracks metrics for the taint scanner.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a metrics collector for the scanner.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveBlock records one block processing outcome.
func (m Scanner) ObserveBlock(err error, _ uint64, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	scannerBlockDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		scannerBlockTxs.WithLabelValues(string(m.network)).Observe(float64(txs))
	}
}

// ObserveCommit records one batch commit outcome.
func (m Scanner) ObserveCommit(err error, ops int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerCommitsTotal.WithLabelValues(string(m.network), status).Inc()
	scannerCommitDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		scannerCommitOps.WithLabelValues(string(m.network)).Observe(float64(ops))
	}
}

// SetBlocksBehind publishes the current lag behind the node tip.
func (m Scanner) SetBlocksBehind(n uint64) {
	scannerBlocksBehind.WithLabelValues(string(m.network)).Set(float64(n))
}

// AddTaintingTxs counts transactions that spread taint.
func (m Scanner) AddTaintingTxs(n int) {
	scannerTaintingTxs.WithLabelValues(string(m.network)).Add(float64(n))
}

// AddTaintedOutputs counts newly tainted outpoints.
func (m Scanner) AddTaintedOutputs(n int) {
	scannerTaintedOutputs.WithLabelValues(string(m.network)).Add(float64(n))
}

// AddTaintedAddresses counts address record upserts.
func (m Scanner) AddTaintedAddresses(n int) {
	scannerTaintedAddresses.WithLabelValues(string(m.network)).Add(float64(n))
}
