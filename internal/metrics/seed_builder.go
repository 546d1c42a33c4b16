package metrics

import (
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seedBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "seed_builder",
		Name:      "blocks_total",
		Help:      "Count of processed seed blocks.",
	}, []string{"network", "status"})

	seedBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tainttrace",
		Subsystem: "seed_builder",
		Name:      "block_duration_seconds",
		Help:      "Duration of processing a single seed block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	seedOutpointsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tainttrace",
		Subsystem: "seed_builder",
		Name:      "outpoints_total",
		Help:      "Count of seeded degree-0 outpoints.",
	}, []string{"network"})
)

// SeedBuilder tracks metrics for seed materialization.
type SeedBuilder struct {
	network model.Network
}

// NewSeedBuilder constructs a metrics collector for the seed builder.
func NewSeedBuilder(network model.Network) *SeedBuilder {
	if network == "" {
		network = "unknown"
	}
	return &SeedBuilder{network: network}
}

// ObserveBlock records one seed block outcome.
func (m SeedBuilder) ObserveBlock(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	seedBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	seedBlockDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// AddOutpoints counts seeded degree-0 outpoints.
func (m SeedBuilder) AddOutpoints(n int) {
	seedOutpointsTotal.WithLabelValues(string(m.network)).Add(float64(n))
}
