// Package query serves read-only taint lookups.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"go.uber.org/zap"
)

const seedNote = "address belongs to the Satoshi coinbase set"

const defaultTimeout = 15 * time.Second

// ErrTimeout marks a lookup that exceeded its wall-clock bound.
var ErrTimeout = errors.New("query timed out")

// Service answers taint lookups with point reads against the store. It
// never mutates and is independent of the scanner's liveness.
type Service struct {
	store   TaintStore
	source  TxSource
	timeout time.Duration
	logger  *zap.Logger
}

// NewService builds the query service. source may be nil; then path
// transactions missing from the cache fall back to hash+amount only.
func NewService(st TaintStore, source TxSource, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		store:   st,
		source:  source,
		timeout: timeout,
		logger:  logger.Named("query"),
	}
}

// Check classifies one address: seed, tainted with a witness path, or
// unconnected. The lookup is wall-clock bounded.
func (s *Service) Check(ctx context.Context, address string) (*Result, error) {
	if address == "" {
		return nil, errors.New("empty address")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type answer struct {
		res *Result
		err error
	}
	done := make(chan answer, 1)
	go func() {
		res, err := s.check(ctx, address)
		done <- answer{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("check %s: %w", address, ErrTimeout)
	case a := <-done:
		return a.res, a.err
	}
}

func (s *Service) check(ctx context.Context, address string) (*Result, error) {
	rec, err := s.store.GetTaint(address)
	if errors.Is(err, store.ErrNotFound) {
		return &Result{
			ConnectionPath: []model.PathHop{},
			Transactions:   []TxInfo{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read taint record: %w", err)
	}

	if rec.IsSeed() {
		return &Result{
			IsConnected:      true,
			IsSatoshiAddress: true,
			Note:             seedNote,
			ConnectionPath:   []model.PathHop{},
			Transactions:     []TxInfo{},
		}, nil
	}

	return &Result{
		IsConnected:    true,
		Degree:         rec.Degree,
		ConnectionPath: rec.Path,
		Transactions:   s.resolveTransactions(ctx, rec.Path),
	}, nil
}

// resolveTransactions enriches each path hop from the tx cache, then the
// node, then falls back to the hop itself. Best-effort throughout.
func (s *Service) resolveTransactions(ctx context.Context, path []model.PathHop) []TxInfo {
	infos := make([]TxInfo, 0, len(path))
	for _, hop := range path {
		if ctx.Err() != nil {
			break
		}
		infos = append(infos, s.resolveTransaction(ctx, hop))
	}
	return infos
}

func (s *Service) resolveTransaction(ctx context.Context, hop model.PathHop) TxInfo {
	cached, err := s.store.GetTx(hop.TxHash)
	if err == nil {
		return TxInfo{
			Hash:    cached.TxID,
			Amount:  hop.Amount,
			Height:  cached.Height,
			Degree:  cached.Degree,
			Outputs: cached.Outputs,
		}
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("tx cache read failed", zap.String("tx", hop.TxHash), zap.Error(err))
	}

	if s.source != nil {
		if tx, err := s.source.FetchTransaction(ctx, hop.TxHash); err == nil {
			outputs := make([]model.TxOutSlim, 0, len(tx.Outputs))
			for _, out := range tx.Outputs {
				outputs = append(outputs, model.TxOutSlim{Address: out.Address, Value: out.Value})
			}
			return TxInfo{Hash: hop.TxHash, Amount: hop.Amount, Outputs: outputs}
		}
	}

	return TxInfo{Hash: hop.TxHash, Amount: hop.Amount}
}
