package scanner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"go.uber.org/zap"
)

// blockProcessor applies the per-block taint propagation algorithm. It is
// the only writer of the taint keyspaces; all staged writes for a block
// commit before the caller publishes progress.
type blockProcessor struct {
	store      TaintStore
	seeds      SeedSet
	parents    *lru.Cache[string, model.TaintRecord]
	metrics    Metrics
	logger     *zap.Logger
	batchSize  int
	batchFlush time.Duration
	cacheTx    func(model.TxRecord)
}

func newBlockProcessor(st TaintStore, seeds SeedSet, metrics Metrics, logger *zap.Logger, cfg Config, cacheTx func(model.TxRecord)) (*blockProcessor, error) {
	parents, err := lru.New[string, model.TaintRecord](cfg.ParentCacheMax)
	if err != nil {
		return nil, err
	}
	return &blockProcessor{
		store:      st,
		seeds:      seeds,
		parents:    parents,
		metrics:    metrics,
		logger:     logger,
		batchSize:  cfg.BatchSize,
		batchFlush: cfg.BatchFlush,
		cacheTx:    cacheTx,
	}, nil
}

type blockResult struct {
	taintingTxs      int
	taintedOutputs   int
	taintedAddresses int
}

// Process classifies every output of the block and commits all staged
// writes. On any error the staged batches are discarded and the block must
// be retried from scratch; progress is not advanced.
func (p *blockProcessor) Process(ctx context.Context, block *model.Block) (res blockResult, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveBlock(err, block.Height, len(block.Txs), started)
	}()

	batches := newStagedBatches(p.store, p.metrics)
	defer func() {
		if err != nil {
			batches.discard()
		}
	}()

	// Outpoints tainted earlier in this same block, visible to later
	// transactions before anything is committed.
	inBlock := make(map[string]uint32)
	// Address records staged but not yet committed, so intra-block chains
	// can extend paths through them.
	pending := make(map[string]model.TaintRecord)
	// Records staged by a failed block leave the parent cache, so the retry
	// does not mistake them for stored ones.
	defer func() {
		if err != nil {
			for addr := range pending {
				p.parents.Remove(addr)
			}
		}
	}()

	for _, tx := range block.Txs {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		if err = p.processTx(block, tx, inBlock, pending, batches, &res); err != nil {
			return res, err
		}
		if batches.ops() >= p.batchSize || batches.age() >= p.batchFlush {
			if err = batches.flush(); err != nil {
				return res, fmt.Errorf("flush batches for block %d: %w", block.Height, err)
			}
		}
	}

	if err = batches.commit(); err != nil {
		return res, fmt.Errorf("commit block %d: %w", block.Height, err)
	}
	return res, nil
}

func (p *blockProcessor) processTx(
	block *model.Block,
	tx model.Transaction,
	inBlock map[string]uint32,
	pending map[string]model.TaintRecord,
	batches *stagedBatches,
	res *blockResult,
) error {
	minDegree, sourceAddr, err := p.classify(tx, inBlock)
	if err != nil {
		return err
	}
	if minDegree == nil {
		return nil
	}
	currentDegree := uint32(*minDegree + 1)

	res.taintingTxs++
	p.metrics.AddTaintingTxs(1)

	now := time.Now().UTC()
	for _, out := range tx.Outputs {
		key := outpointMapKey(tx.TxID, out.Index)
		if _, staged := inBlock[key]; staged {
			continue
		}
		existing, err := p.store.GetOutpoint(tx.TxID, out.Index)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if existing != nil {
			continue
		}

		if err := p.store.StageOutpoint(batches.scan, tx.TxID, out.Index, model.OutpointRecord{
			Degree:  currentDegree,
			Address: out.Address,
			Height:  block.Height,
		}); err != nil {
			return err
		}
		inBlock[key] = currentDegree
		res.taintedOutputs++
		p.metrics.AddTaintedOutputs(1)

		if out.Address == "" {
			continue
		}
		updated, err := p.upsertAddress(batches, pending, tx, out, currentDegree, sourceAddr, now)
		if err != nil {
			return err
		}
		if updated {
			res.taintedAddresses++
			p.metrics.AddTaintedAddresses(1)
		}
	}

	if p.cacheTx != nil {
		p.cacheTx(compactTx(block, tx, currentDegree))
	}
	return nil
}

// classify computes the minimum degree over the transaction's tainted
// inputs, or applies the seed-paying-output fallback. A nil result means
// the transaction spreads no taint. The returned source address is the
// prevout address of the first input at the minimum degree, empty when
// none decodes.
func (p *blockProcessor) classify(tx model.Transaction, inBlock map[string]uint32) (*int64, string, error) {
	minDegree := int64(math.MaxInt64)
	sourceAddr := ""
	tainted := false

	for _, in := range tx.Inputs {
		if in.IsCoinbase {
			continue
		}
		if !in.HasPrevout {
			p.logger.Warn("non-coinbase input lacks prevout, treating as untainted",
				zap.String("tx", tx.TxID),
				zap.String("prevTx", in.PrevTxID),
				zap.Uint32("prevVout", in.PrevVout),
			)
			continue
		}
		degree, ok, err := p.inputDegree(inBlock, in.PrevTxID, in.PrevVout)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			continue
		}
		tainted = true
		if int64(degree) < minDegree {
			minDegree = int64(degree)
			sourceAddr = in.PrevAddress
		}
	}

	if tainted {
		return &minDegree, sourceAddr, nil
	}

	// Seed-side spends whose inputs are unknown: any output paying a seed
	// address marks the whole transaction as degree 0. No witness path can
	// be built on this rule, so the source stays empty.
	for _, out := range tx.Outputs {
		if out.Address != "" && p.seeds.Contains(out.Address) {
			deg := int64(-1)
			return &deg, "", nil
		}
	}
	return nil, "", nil
}

func (p *blockProcessor) inputDegree(inBlock map[string]uint32, txid string, vout uint32) (uint32, bool, error) {
	if degree, ok := inBlock[outpointMapKey(txid, vout)]; ok {
		return degree, true, nil
	}
	rec, err := p.store.GetOutpoint(txid, vout)
	if errors.Is(err, store.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rec.Degree, true, nil
}

// upsertAddress stages the TaintRecord for an output address when the new
// degree improves on the stored one (strictly). Seed records are never
// touched; a missing source or parent record abandons the path.
func (p *blockProcessor) upsertAddress(
	batches *stagedBatches,
	pending map[string]model.TaintRecord,
	tx model.Transaction,
	out model.TxOutput,
	currentDegree uint32,
	sourceAddr string,
	now time.Time,
) (bool, error) {
	if p.seeds.Contains(out.Address) {
		return false, nil
	}
	existing, err := p.addressRecord(pending, out.Address)
	if err != nil {
		return false, err
	}
	if existing != nil && existing.Degree <= currentDegree {
		return false, nil
	}
	if sourceAddr == "" {
		return false, nil
	}
	parent, err := p.addressRecord(pending, sourceAddr)
	if err != nil {
		return false, err
	}
	if parent == nil {
		p.logger.Debug("source address has no taint record, abandoning path",
			zap.String("source", sourceAddr),
			zap.String("tx", tx.TxID),
		)
		return false, nil
	}

	path := make([]model.PathHop, len(parent.Path)+1)
	copy(path, parent.Path)
	path[len(parent.Path)] = model.PathHop{
		From:   sourceAddr,
		To:     out.Address,
		TxHash: tx.TxID,
		Amount: out.Value,
	}
	rec := model.TaintRecord{
		Address:     out.Address,
		SeedAddress: parent.SeedAddress,
		Degree:      currentDegree,
		Path:        path,
		SourceTx:    tx.TxID,
		AmountSat:   out.Value,
		LastUpdated: now,
	}
	if err := p.store.StageTaint(batches.main, rec); err != nil {
		return false, err
	}
	pending[out.Address] = rec
	p.parents.Add(out.Address, rec)
	return true, nil
}

// addressRecord resolves the freshest view of an address record: staged in
// this block, cached, or stored. Cache entries only ever improve, so a hit
// is always safe to trust for the monotone degree check.
func (p *blockProcessor) addressRecord(pending map[string]model.TaintRecord, address string) (*model.TaintRecord, error) {
	if rec, ok := pending[address]; ok {
		return &rec, nil
	}
	if rec, ok := p.parents.Get(address); ok {
		return &rec, nil
	}
	rec, err := p.store.GetTaint(address)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.parents.Add(address, *rec)
	return rec, nil
}

func compactTx(block *model.Block, tx model.Transaction, degree uint32) model.TxRecord {
	inputs := make([]model.TxRef, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if in.IsCoinbase {
			continue
		}
		inputs = append(inputs, model.TxRef{TxID: in.PrevTxID, Vout: in.PrevVout})
	}
	outputs := make([]model.TxOutSlim, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		outputs = append(outputs, model.TxOutSlim{Address: out.Address, Value: out.Value})
	}
	return model.TxRecord{
		TxID:    tx.TxID,
		Height:  block.Height,
		Time:    block.Timestamp,
		Degree:  degree,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

func outpointMapKey(txid string, vout uint32) string {
	return fmt.Sprintf("%s:%d", txid, vout)
}

// stagedBatches pairs the scan-store and main-store batches of one block
// and keeps their combined size and age under the flush thresholds.
type stagedBatches struct {
	st      TaintStore
	metrics Metrics
	scan    *store.Batch
	main    *store.Batch
}

func newStagedBatches(st TaintStore, metrics Metrics) *stagedBatches {
	return &stagedBatches{
		st:      st,
		metrics: metrics,
		scan:    st.NewScanBatch(),
		main:    st.NewMainBatch(),
	}
}

func (b *stagedBatches) ops() int {
	return b.scan.Len() + b.main.Len()
}

func (b *stagedBatches) age() time.Duration {
	if b.scan.Age() > b.main.Age() {
		return b.scan.Age()
	}
	return b.main.Age()
}

// flush commits both batches and opens fresh ones.
func (b *stagedBatches) flush() error {
	if err := b.commit(); err != nil {
		return err
	}
	b.scan = b.st.NewScanBatch()
	b.main = b.st.NewMainBatch()
	return nil
}

// commit durably applies both batches. The main store goes first so address
// records never reference outpoints that could not be replayed.
func (b *stagedBatches) commit() (err error) {
	started := time.Now()
	ops := b.ops()
	defer func() {
		b.metrics.ObserveCommit(err, ops, started)
	}()
	if err = b.main.Commit(); err != nil {
		return err
	}
	return b.scan.Commit()
}

func (b *stagedBatches) discard() {
	b.main.Discard()
	b.scan.Discard()
}
