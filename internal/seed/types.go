package seed

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainSource serves coinbase blocks for the curated heights.
	ChainSource interface {
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}

	// TaintStore is the store surface the builder writes seeds into.
	TaintStore interface {
		GetSeedMarker() (*model.SeedMarker, error)
		SetSeedMarker(rec model.SeedMarker) error
		GetTaint(address string) (*model.TaintRecord, error)
		PutTaint(rec model.TaintRecord) error
		PutOutpoint(txid string, vout uint32, rec model.OutpointRecord) error
		ScanTainted(fn func(rec model.TaintRecord) error) error
	}

	// Metrics records seed materialization metrics.
	Metrics interface {
		ObserveBlock(err error, started time.Time)
		AddOutpoints(n int)
	}
)
