package scanner

import (
	"sync"
	"time"
)

// Stats are cumulative counters since process start.
type Stats struct {
	BlocksProcessed  uint64    `json:"blocksProcessed"`
	TxsProcessed     uint64    `json:"txsProcessed"`
	TaintingTxs      uint64    `json:"taintingTxs"`
	TaintedOutputs   uint64    `json:"taintedOutputs"`
	TaintedAddresses uint64    `json:"taintedAddresses"`
	Errors           uint64    `json:"errors"`
	StartedAt        time.Time `json:"startedAt"`
	LastBlockAt      time.Time `json:"lastBlockAt,omitempty"`
}

// Status is a point-in-time view of the scanner published to /sync-status.
type Status struct {
	IsRunning          bool    `json:"isRunning"`
	IsSyncing          bool    `json:"isSyncing"`
	LastProcessedBlock uint64  `json:"lastProcessedBlock"`
	CurrentHeight      uint64  `json:"currentHeight"`
	BlocksBehind       uint64  `json:"blocksBehind"`
	Progress           float64 `json:"progress"`
	Stats              Stats   `json:"stats"`
	Config             Config  `json:"config"`
}

// statusTracker owns the mutable runtime view behind Status().
type statusTracker struct {
	mu     sync.Mutex
	status Status
}

func newStatusTracker(cfg Config) *statusTracker {
	return &statusTracker{status: Status{Config: cfg}}
}

func (t *statusTracker) snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *statusTracker) setRunning(running bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.IsRunning = running
	if running {
		t.status.Stats.StartedAt = time.Now().UTC()
	}
}

func (t *statusTracker) setHeights(lastProcessed, tip uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.LastProcessedBlock = lastProcessed
	t.status.CurrentHeight = tip
	if tip >= lastProcessed {
		t.status.BlocksBehind = tip - lastProcessed
	} else {
		t.status.BlocksBehind = 0
	}
	t.status.IsSyncing = t.status.BlocksBehind > 0
	if tip > 0 {
		t.status.Progress = float64(lastProcessed) / float64(tip)
	}
}

func (t *statusTracker) blockDone(height uint64, txs, taintingTxs, outputs, addresses int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.LastProcessedBlock = height
	t.status.Stats.BlocksProcessed++
	t.status.Stats.TxsProcessed += uint64(txs)
	t.status.Stats.TaintingTxs += uint64(taintingTxs)
	t.status.Stats.TaintedOutputs += uint64(outputs)
	t.status.Stats.TaintedAddresses += uint64(addresses)
	t.status.Stats.LastBlockAt = time.Now().UTC()
	if t.status.CurrentHeight >= height {
		t.status.BlocksBehind = t.status.CurrentHeight - height
	}
}

func (t *statusTracker) errorSeen() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Stats.Errors++
}
