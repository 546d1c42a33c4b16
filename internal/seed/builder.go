package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"github.com/goodnatureofminers/tainttrace-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount  = 16
	progressLogInterval = 1000
)

// Builder materializes the curated Satoshi coinbase set into the taint
// store as degree-0 seeds. The operation is one-shot: a marker written at
// completion makes every later run a single point read.
type Builder struct {
	store       TaintStore
	source      ChainSource
	metrics     Metrics
	logger      *zap.Logger
	heights     []uint64
	fallbacks   map[uint64]string
	workerCount int
}

// NewBuilder constructs a Builder over the in-source curated list.
func NewBuilder(st TaintStore, source ChainSource, metrics Metrics, logger *zap.Logger) (*Builder, error) {
	if metrics == nil {
		return nil, errors.New("seed builder metrics is required")
	}
	return &Builder{
		store:       st,
		source:      source,
		metrics:     metrics,
		logger:      logger.Named("seedBuilder"),
		heights:     Heights(),
		fallbacks:   FallbackAddresses(),
		workerCount: defaultWorkerCount,
	}, nil
}

// NewBuilderWithHeights constructs a Builder over an alternative height
// list. Used by tests and operational tooling.
func NewBuilderWithHeights(st TaintStore, source ChainSource, metrics Metrics, logger *zap.Logger, heights []uint64, fallbacks map[uint64]string) (*Builder, error) {
	b, err := NewBuilder(st, source, metrics, logger)
	if err != nil {
		return nil, err
	}
	b.heights = heights
	b.fallbacks = fallbacks
	return b, nil
}

// Run materializes the seed set unless the marker says it already happened.
func (b *Builder) Run(ctx context.Context) error {
	marker, err := b.store.GetSeedMarker()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read seed marker: %w", err)
	}
	if marker != nil {
		b.logger.Info("seed set already materialized",
			zap.Time("at", marker.Timestamp),
			zap.Uint64("outpoints", marker.OutpointCount),
		)
		return nil
	}

	b.logger.Info("materializing seed set", zap.Int("heights", len(b.heights)))

	var outpoints atomic.Uint64
	var processed atomic.Uint64
	var mu sync.Mutex

	err = workerpool.Process(ctx, b.workerCount, b.heights, func(ctx context.Context, height uint64) error {
		if err := b.processHeight(ctx, height, &outpoints, &mu); err != nil {
			return err
		}
		if n := processed.Add(1); n%progressLogInterval == 0 {
			b.logger.Info("seed progress",
				zap.Uint64("blocks", n),
				zap.Int("total", len(b.heights)),
				zap.Uint64("outpoints", outpoints.Load()),
			)
		}
		return nil
	}, nil)
	if err != nil {
		return fmt.Errorf("seed materialization: %w", err)
	}

	if err := b.seedFallbackAddresses(); err != nil {
		return err
	}

	count := outpoints.Load()
	if err := b.store.SetSeedMarker(model.SeedMarker{
		Timestamp:     time.Now().UTC(),
		OutpointCount: count,
	}); err != nil {
		return fmt.Errorf("write seed marker: %w", err)
	}

	b.logger.Info("seed set materialized", zap.Uint64("outpoints", count))
	return nil
}

// processHeight writes degree-0 marks for every output of the coinbase
// transaction at the given height. The node is authoritative on addresses:
// a non-decodable script still produces an outpoint mark.
func (b *Builder) processHeight(ctx context.Context, height uint64, outpoints *atomic.Uint64, mu *sync.Mutex) (err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveBlock(err, started)
	}()

	block, err := b.source.FetchBlock(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch seed block %d: %w", height, err)
	}
	if len(block.Txs) == 0 {
		return fmt.Errorf("seed block %d has no transactions", height)
	}

	coinbase := block.Txs[0]
	for _, out := range coinbase.Outputs {
		rec := model.OutpointRecord{
			Degree:  0,
			Address: out.Address,
			Height:  height,
		}
		if err := b.store.PutOutpoint(coinbase.TxID, out.Index, rec); err != nil {
			return fmt.Errorf("seed outpoint %s:%d: %w", coinbase.TxID, out.Index, err)
		}
		outpoints.Add(1)
		b.metrics.AddOutpoints(1)

		if out.Address == "" {
			continue
		}
		mu.Lock()
		err := b.putSeedAddress(out.Address)
		mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// putSeedAddress writes the degree-0 record for one address, keeping the
// earliest write when several coinbase outputs pay the same address.
func (b *Builder) putSeedAddress(address string) error {
	existing, err := b.store.GetTaint(address)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if existing != nil && existing.IsSeed() {
		return nil
	}
	return b.store.PutTaint(model.TaintRecord{
		Address:     address,
		SeedAddress: address,
		Degree:      0,
		Path:        []model.PathHop{},
		LastUpdated: time.Now().UTC(),
	})
}

// seedFallbackAddresses force-seeds the well-known early-block addresses in
// case the node reported their scripts as non-standard.
func (b *Builder) seedFallbackAddresses() error {
	for height, address := range b.fallbacks {
		if err := b.putSeedAddress(address); err != nil {
			return fmt.Errorf("seed fallback address for block %d: %w", height, err)
		}
	}
	return nil
}
