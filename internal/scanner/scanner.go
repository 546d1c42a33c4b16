// Package scanner implements the chronological taint propagation engine.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/clock"
	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"github.com/goodnatureofminers/tainttrace-backend/pkg/batcher"
	"github.com/goodnatureofminers/tainttrace-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Service walks blocks in height order from the last checkpoint to the
// chain tip, then keeps following the tip on an adaptive interval. The
// outer loop never terminates on transient or block-local errors; only a
// stop signal or an invariant violation ends it.
type Service struct {
	logger    *zap.Logger
	source    ChainSource
	store     TaintStore
	metrics   Metrics
	cfg       Config
	sleep     func(context.Context, time.Duration) error
	status    *statusTracker
	processor *blockProcessor
	txCache   *batcher.Batcher[model.TxRecord]
}

// NewService builds the scanner with its dependencies.
func NewService(
	st TaintStore,
	source ChainSource,
	seeds SeedSet,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.Named("scanner")

	s := &Service{
		logger:  logger,
		source:  source,
		store:   st,
		metrics: metrics,
		cfg:     cfg,
		sleep:   clock.SleepWithContext,
		status:  newStatusTracker(cfg),
	}

	s.txCache = batcher.New[model.TxRecord](
		logger.Named("txCache"),
		s.flushTxRecords,
		txCacheCapacity,
		txCacheFlushInterval,
		txCacheFlushRPS,
	)

	processor, err := newBlockProcessor(st, seeds, metrics, logger.Named("blockProcessor"), cfg, s.enqueueTxRecord)
	if err != nil {
		return nil, err
	}
	s.processor = processor
	return s, nil
}

// Status returns a point-in-time runtime view.
func (s *Service) Status() Status {
	return s.status.snapshot()
}

// Run drives the scan loop until the context is canceled. Invariant
// violations abort; everything else backs off and retries.
func (s *Service) Run(ctx context.Context) error {
	s.status.setRunning(true)
	defer s.status.setRunning(false)

	s.txCache.Start(ctx)
	defer s.txCache.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if errors.Is(err, store.ErrInvariant) {
				s.logger.Error("invariant violation, aborting scanner", zap.Error(err))
				return err
			}
			s.status.errorSeen()
			s.logger.Warn("scan iteration failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", errorSleepDuration),
			)
			if sleepErr := s.sleep(ctx, errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// run processes one window of blocks, publishes progress per block, then
// sleeps on the adaptive interval.
func (s *Service) run(ctx context.Context) error {
	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest height: %w", err)
	}

	next, lastProcessed, err := s.nextHeight()
	if err != nil {
		return err
	}
	s.status.setHeights(lastProcessed, tip)

	target := tip
	if s.cfg.TrailBlocks > 0 && target >= s.cfg.TrailBlocks {
		target -= s.cfg.TrailBlocks
	}

	if next > target {
		s.metrics.SetBlocksBehind(0)
		return s.sleep(ctx, s.cfg.IdleInterval)
	}

	window := target - next + 1
	if window > s.cfg.ChunkSize {
		window = s.cfg.ChunkSize
	}

	blocks, err := s.prefetch(ctx, next, window)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		res, err := s.processor.Process(ctx, block)
		if err != nil {
			return fmt.Errorf("process block %d: %w", block.Height, err)
		}
		if err := s.store.SetProgress(model.ScanProgress{
			LastBlock: block.Height,
			UpdatedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("publish progress %d: %w", block.Height, err)
		}
		s.status.blockDone(block.Height, len(block.Txs), res.taintingTxs, res.taintedOutputs, res.taintedAddresses)
	}

	behind := target - blocks[len(blocks)-1].Height
	s.metrics.SetBlocksBehind(behind)
	s.logger.Info("window processed",
		zap.Uint64("from", next),
		zap.Uint64("to", blocks[len(blocks)-1].Height),
		zap.Uint64("behind", behind),
	)

	return s.sleep(ctx, nextSleep(behind, s.cfg.IdleInterval))
}

// nextHeight loads the checkpoint. A fresh store starts at the genesis
// block.
func (s *Service) nextHeight() (uint64, uint64, error) {
	progress, err := s.store.GetProgress()
	if errors.Is(err, store.ErrNotFound) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("load scan progress: %w", err)
	}
	return progress.LastBlock + 1, progress.LastBlock, nil
}

// prefetch fetches the window concurrently, bounded by the RPC limiter,
// and returns the blocks in ascending height order.
func (s *Service) prefetch(ctx context.Context, from, count uint64) ([]*model.Block, error) {
	heights := make([]uint64, count)
	for i := range heights {
		heights[i] = from + uint64(i)
	}

	return workerpool.Collect(ctx, s.cfg.PrefetchWorkers, heights, func(ctx context.Context, height uint64) (*model.Block, error) {
		block, err := s.source.FetchBlock(ctx, height)
		if err != nil {
			return nil, fmt.Errorf("fetch block %d: %w", height, err)
		}
		return block, nil
	})
}

func (s *Service) enqueueTxRecord(rec model.TxRecord) {
	// Best-effort: a full queue or stopped batcher drops the record.
	_ = s.txCache.TryAdd(rec)
}

func (s *Service) flushTxRecords(ctx context.Context, recs []model.TxRecord) error {
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.store.PutTx(rec); err != nil {
			s.logger.Debug("tx cache write failed", zap.String("tx", rec.TxID), zap.Error(err))
		}
	}
	return nil
}
