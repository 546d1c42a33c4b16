package query

import (
	"context"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TaintStore is the read-only store surface the query service uses.
	TaintStore interface {
		GetTaint(address string) (*model.TaintRecord, error)
		GetTx(txid string) (*model.TxRecord, error)
	}

	// TxSource optionally resolves path transactions the cache misses.
	TxSource interface {
		FetchTransaction(ctx context.Context, txid string) (*model.Transaction, error)
	}
)

// TxInfo is one resolved path transaction: the cached compact record, the
// outputs fetched from the node, or the {hash, amount} fallback from the
// path hop.
type TxInfo struct {
	Hash    string            `json:"hash"`
	Amount  uint64            `json:"amount"`
	Height  uint64            `json:"height,omitempty"`
	Degree  uint32            `json:"degree,omitempty"`
	Outputs []model.TxOutSlim `json:"outputs,omitempty"`
}

// Result is the well-typed answer for one address.
type Result struct {
	IsConnected      bool            `json:"isConnected"`
	IsSatoshiAddress bool            `json:"isSatoshiAddress"`
	Degree           uint32          `json:"degree"`
	Note             string          `json:"note,omitempty"`
	ConnectionPath   []model.PathHop `json:"connectionPath"`
	Transactions     []TxInfo        `json:"transactions"`
}
