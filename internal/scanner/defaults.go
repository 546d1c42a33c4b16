package scanner

import "time"

const (
	defaultChunkSize       = 100
	defaultBatchSize       = 1000
	defaultBatchFlush      = 5 * time.Second
	defaultIdleInterval    = 10 * time.Minute
	defaultParentCacheMax  = 10_000
	defaultPrefetchWorkers = 16

	errorSleepDuration = 30 * time.Second

	// Adaptive polling thresholds: how far behind the node the store is.
	farBehindBlocks  = 1000
	nearBehindBlocks = 100

	farBehindSleep   = 5 * time.Second
	nearBehindSleep  = 30 * time.Second
	closeBehindSleep = 2 * time.Minute

	// The tx: cache carries no invariant, so its writes flow through an
	// async batcher instead of the per-block commit path.
	txCacheCapacity      = 512
	txCacheFlushInterval = 2 * time.Second
	txCacheFlushRPS      = 20
)

// Config tunes the scanner. Zero values fall back to the defaults above.
// The struct is echoed verbatim on /sync-status.
type Config struct {
	ChunkSize       uint64        `json:"chunkSize"`
	BatchSize       int           `json:"batchSize"`
	BatchFlush      time.Duration `json:"batchFlush"`
	IdleInterval    time.Duration `json:"idleInterval"`
	ParentCacheMax  int           `json:"parentCacheMax"`
	PrefetchWorkers int           `json:"prefetchWorkers"`
	TrailBlocks     uint64        `json:"trailBlocks"`
}

func (c Config) withDefaults() Config {
	if c.ChunkSize == 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.BatchFlush == 0 {
		c.BatchFlush = defaultBatchFlush
	}
	if c.IdleInterval == 0 {
		c.IdleInterval = defaultIdleInterval
	}
	if c.ParentCacheMax == 0 {
		c.ParentCacheMax = defaultParentCacheMax
	}
	if c.PrefetchWorkers == 0 {
		c.PrefetchWorkers = defaultPrefetchWorkers
	}
	return c
}

// nextSleep picks the adaptive polling interval from how far behind the
// node the store is.
func nextSleep(behind uint64, idle time.Duration) time.Duration {
	switch {
	case behind > farBehindBlocks:
		return farBehindSleep
	case behind > nearBehindBlocks:
		return nearBehindSleep
	case behind > 0:
		return closeBehindSleep
	default:
		return idle
	}
}
