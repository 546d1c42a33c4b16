package bitcoin

import "errors"

var (
	// ErrNodeUnreachable marks a node that did not answer after retries.
	ErrNodeUnreachable = errors.New("bitcoin node unreachable")
	// ErrNodeSyncing marks a node still in initial block download.
	ErrNodeSyncing = errors.New("bitcoin node in initial block download")
	// ErrNotFound marks a height or transaction the node does not know.
	ErrNotFound = errors.New("not found")
	// ErrNoTxIndex marks a node running without txindex=1.
	ErrNoTxIndex = errors.New("bitcoin node has no transaction index")
	// ErrWrongChain marks a node on a different network than configured.
	ErrWrongChain = errors.New("bitcoin node on unexpected chain")
)
