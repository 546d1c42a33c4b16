package store

import "fmt"

// Key layout. The main store holds the lookup-critical address and tx
// namespaces; the scan store holds the large outpoint namespace and the
// scanner bookkeeping singletons.
const (
	taintPrefix    = "tainted:"
	txPrefix       = "tx:"
	outpointPrefix = "tainted_out:"

	progressKey   = "scan_progress"
	seedMarkerKey = "satoshi_coinbase_initialized"
)

// TaintKey addresses the TaintRecord of one address.
func TaintKey(address string) []byte {
	return []byte(taintPrefix + address)
}

// TxKey addresses the cached compact record of one transaction.
func TxKey(txid string) []byte {
	return []byte(txPrefix + txid)
}

// OutpointKey addresses the taint mark of one (txid, vout).
func OutpointKey(txid string, vout uint32) []byte {
	return []byte(fmt.Sprintf("%s%s:%d", outpointPrefix, txid, vout))
}
