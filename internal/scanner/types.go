package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainSource serves the chain tip and verbose-with-prevouts blocks.
	ChainSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}

	// SeedSet answers seed membership for the seed-paying-output rule.
	SeedSet interface {
		Contains(address string) bool
	}

	// TaintStore is the store surface the scanner reads and mutates.
	TaintStore interface {
		GetProgress() (*model.ScanProgress, error)
		SetProgress(rec model.ScanProgress) error
		GetOutpoint(txid string, vout uint32) (*model.OutpointRecord, error)
		GetTaint(address string) (*model.TaintRecord, error)
		PutTx(rec model.TxRecord) error
		NewMainBatch() *store.Batch
		NewScanBatch() *store.Batch
		StageTaint(b *store.Batch, rec model.TaintRecord) error
		StageOutpoint(b *store.Batch, txid string, vout uint32, rec model.OutpointRecord) error
	}

	// Metrics records scanner metrics.
	Metrics interface {
		ObserveBlock(err error, height uint64, txs int, started time.Time)
		ObserveCommit(err error, ops int, started time.Time)
		SetBlocksBehind(n uint64)
		AddTaintingTxs(n int)
		AddTaintedOutputs(n int)
		AddTaintedAddresses(n int)
	}
)
