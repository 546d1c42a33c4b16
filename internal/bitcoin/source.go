package bitcoin

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/pkg/safe"
)

// ChainSource serves verbose-with-prevouts blocks from the node to the
// scanner and the seed builder.
type ChainSource struct {
	rpc     *RPCClient
	decoder ScriptDecoder
	network model.Network
}

// NewChainSource creates a ChainSource for the given network.
func NewChainSource(rpc *RPCClient, decoder ScriptDecoder, network model.Network) *ChainSource {
	return &ChainSource{
		rpc:     rpc,
		decoder: decoder,
		network: network,
	}
}

// LatestHeight returns the latest block height from the node.
func (s *ChainSource) LatestHeight(ctx context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount(ctx)
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// ChainInfo reports the node chain state.
func (s *ChainSource) ChainInfo(ctx context.Context) (*ChainInfo, error) {
	return s.rpc.GetBlockChainInfo(ctx)
}

// FetchBlock retrieves the block at the given height with all transactions
// expanded and prevouts resolved.
func (s *ChainSource) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(ctx, int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerbose(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return BuildBlock(*src, s.network, s.decoder)
}

// FetchTransaction retrieves a single decoded transaction for query-side
// enrichment. Requires txindex on the node.
func (s *ChainSource) FetchTransaction(ctx context.Context, txid string) (*model.Transaction, error) {
	src, err := s.rpc.GetRawTransactionVerbose(ctx, txid)
	if err != nil {
		return nil, err
	}
	wrapped := VerboseBlock{Tx: []VerboseTx{*src}}
	block, err := BuildBlock(wrapped, s.network, s.decoder)
	if err != nil {
		return nil, err
	}
	return &block.Txs[0], nil
}

// VerifyNodePolicy refuses nodes the scanner cannot safely run against:
// wrong chain, initial block download, or a missing transaction index.
func (s *ChainSource) VerifyNodePolicy(ctx context.Context) error {
	info, err := s.rpc.GetBlockChainInfo(ctx)
	if err != nil {
		return err
	}
	if !chainMatches(info.Chain, s.network) {
		return fmt.Errorf("node chain %q, expected %q: %w", info.Chain, s.network, ErrWrongChain)
	}
	if info.InitialBlockDownload {
		return fmt.Errorf("verification progress %.4f: %w", info.VerificationProgress, ErrNodeSyncing)
	}

	indexes, err := s.rpc.GetIndexInfo(ctx)
	if err != nil {
		return err
	}
	if _, ok := indexes["txindex"]; !ok {
		return ErrNoTxIndex
	}
	return nil
}

func chainMatches(chain string, network model.Network) bool {
	switch chain {
	case "main":
		return network == model.Mainnet
	case "test":
		return network == model.Testnet
	default:
		return string(network) == chain
	}
}
