package bitcoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/tainttrace-backend/internal/clock"
	"go.uber.org/zap"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// RetryConfig bounds the retry schedule of a single logical RPC call.
type RetryConfig struct {
	MaxAttempts int
	Base        time.Duration
	Cap         time.Duration
	MaxJitter   time.Duration
}

// DefaultRetryConfig mirrors the documented node-client defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 5,
		Base:        500 * time.Millisecond,
		Cap:         2 * time.Minute,
		MaxJitter:   time.Second,
	}
}

// RPCClient wraps btc rpcclient with metrics instrumentation, bounded
// concurrency against the node and retry with exponential backoff.
type RPCClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
	logger     *zap.Logger
	retry      RetryConfig
	sem        chan struct{}
}

// NewRPCClient constructs an instrumented RPC client. maxParallel bounds
// in-flight requests against the node.
func NewRPCClient(client *rpcclient.Client, rpcMetrics RPCMetrics, retry RetryConfig, maxParallel int, logger *zap.Logger) *RPCClient {
	if maxParallel <= 0 {
		maxParallel = 16
	}
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig()
	}
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		logger:     logger,
		retry:      retry,
		sem:        make(chan struct{}, maxParallel),
	}
}

// GetBlockCount returns the latest block count.
func (r *RPCClient) GetBlockCount(ctx context.Context) (count int64, err error) {
	err = r.do(ctx, "get_block_count", func() error {
		var callErr error
		count, callErr = r.client.GetBlockCount()
		return callErr
	})
	return count, err
}

// GetBlockHash returns the block hash for a height. Heights beyond the tip
// yield ErrNotFound.
func (r *RPCClient) GetBlockHash(ctx context.Context, blockHeight int64) (hash *chainhash.Hash, err error) {
	err = r.do(ctx, "get_block_hash", func() error {
		var callErr error
		hash, callErr = r.client.GetBlockHash(blockHeight)
		return callErr
	})
	if err != nil && isOutOfRange(err) {
		return nil, fmt.Errorf("block height %d: %w", blockHeight, ErrNotFound)
	}
	return hash, err
}

// GetBlockVerbose returns the block with all transactions expanded and every
// input annotated with its prevout (getblock verbosity 3).
func (r *RPCClient) GetBlockVerbose(ctx context.Context, blockHash *chainhash.Hash) (res *VerboseBlock, err error) {
	err = r.do(ctx, "get_block_verbose", func() error {
		return r.rawRequest("getblock", &res, blockHash.String(), 3)
	})
	return res, err
}

// GetRawTransactionVerbose returns a decoded transaction by id. Requires
// txindex=1 on the node.
func (r *RPCClient) GetRawTransactionVerbose(ctx context.Context, txid string) (res *VerboseTx, err error) {
	err = r.do(ctx, "get_raw_transaction", func() error {
		return r.rawRequest("getrawtransaction", &res, txid, true)
	})
	if err != nil && isNoSuchTx(err) {
		return nil, fmt.Errorf("tx %s: %w", txid, ErrNotFound)
	}
	return res, err
}

// GetBlockChainInfo returns chain state including initial-block-download.
func (r *RPCClient) GetBlockChainInfo(ctx context.Context) (res *ChainInfo, err error) {
	err = r.do(ctx, "get_blockchain_info", func() error {
		return r.rawRequest("getblockchaininfo", &res)
	})
	return res, err
}

// GetNetworkInfo returns node network state.
func (r *RPCClient) GetNetworkInfo(ctx context.Context) (res *NetworkInfo, err error) {
	err = r.do(ctx, "get_network_info", func() error {
		return r.rawRequest("getnetworkinfo", &res)
	})
	return res, err
}

// GetMempoolInfo returns mempool counters.
func (r *RPCClient) GetMempoolInfo(ctx context.Context) (res *MempoolInfo, err error) {
	err = r.do(ctx, "get_mempool_info", func() error {
		return r.rawRequest("getmempoolinfo", &res)
	})
	return res, err
}

// GetRawMempool returns the txids currently in the node mempool.
func (r *RPCClient) GetRawMempool(ctx context.Context) (res []string, err error) {
	err = r.do(ctx, "get_raw_mempool", func() error {
		return r.rawRequest("getrawmempool", &res)
	})
	return res, err
}

// GetIndexInfo returns the node's optional index states keyed by index name.
func (r *RPCClient) GetIndexInfo(ctx context.Context) (res map[string]IndexInfo, err error) {
	err = r.do(ctx, "get_index_info", func() error {
		return r.rawRequest("getindexinfo", &res)
	})
	return res, err
}

// Shutdown releases the underlying connection.
func (r *RPCClient) Shutdown() {
	r.client.Shutdown()
	r.client.WaitForShutdown()
}

func (r *RPCClient) rawRequest(method string, out interface{}, params ...interface{}) error {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		marshaled, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal %s param: %w", method, err)
		}
		raw = append(raw, marshaled)
	}
	res, err := r.client.RawRequest(method, raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// do acquires an in-flight slot, then runs the call with the retry schedule.
// RPC-level errors from the node are deterministic and returned immediately;
// transport failures are retried.
func (r *RPCClient) do(ctx context.Context, op string, call func() error) error {
	select {
	case r.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-r.sem }()

	var err error
	for attempt := 0; attempt < r.retry.MaxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		started := time.Now()
		err = call()
		r.rpcMetrics.Observe(op, err, started)
		if err == nil || !isTransient(err) {
			return err
		}
		if attempt == r.retry.MaxAttempts-1 {
			break
		}
		wait := clock.Backoff(attempt, r.retry.Base, r.retry.Cap, r.retry.MaxJitter)
		if r.logger != nil {
			r.logger.Warn("rpc call failed, retrying",
				zap.String("operation", op),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", wait),
				zap.Error(err),
			)
		}
		if sleepErr := clock.SleepWithContext(ctx, wait); sleepErr != nil {
			return sleepErr
		}
	}
	return fmt.Errorf("%s after %d attempts: %w (%w)", op, r.retry.MaxAttempts, ErrNodeUnreachable, err)
}

// isTransient reports whether the failure is worth retrying. Errors carrying
// an RPC error code came from the node itself and will not change on replay,
// with the exception of warm-up codes.
func isTransient(err error) bool {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == btcjson.ErrRPCInWarmup || rpcErr.Code == btcjson.ErrRPCClientInInitialDownload
	}
	return true
}

func isOutOfRange(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCInvalidParameter
}

func isNoSuchTx(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && (rpcErr.Code == btcjson.ErrRPCInvalidAddressOrKey || rpcErr.Code == btcjson.ErrRPCNoTxInfo)
}
