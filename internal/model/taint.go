package model

import "time"

// PathHop is a single address-to-address hop of a witness path, realized by
// a specific transaction output.
type PathHop struct {
	From   string `json:"from"`
	To     string `json:"to"`
	TxHash string `json:"txHash"`
	Amount uint64 `json:"amount"`
}

// TaintRecord is the best-known tainting of an address: the minimum hop
// distance from the seed set and one witness path realizing it. Seed
// addresses carry degree 0 and an empty path.
type TaintRecord struct {
	Address     string    `json:"address"`
	SeedAddress string    `json:"seedAddress"`
	Degree      uint32    `json:"degree"`
	Path        []PathHop `json:"path"`
	SourceTx    string    `json:"sourceTx,omitempty"`
	AmountSat   uint64    `json:"amountSat,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// IsSeed reports whether the record belongs to the curated seed set.
func (r TaintRecord) IsSeed() bool {
	return r.Degree == 0
}

// OutpointRecord marks one (txid, vout) as tainted. The degree is monotone:
// once stored it only ever decreases.
type OutpointRecord struct {
	Degree  uint32 `json:"d"`
	Address string `json:"a,omitempty"`
	Height  uint64 `json:"h"`
}

// TxRecord is a compact cached transaction on a taint-spreading path,
// written opportunistically for query-side enrichment.
type TxRecord struct {
	TxID    string      `json:"txid"`
	Height  uint64      `json:"height"`
	Time    time.Time   `json:"time"`
	Degree  uint32      `json:"degree"`
	Inputs  []TxRef     `json:"inputs"`
	Outputs []TxOutSlim `json:"outputs"`
}

// TxRef references a spent outpoint inside a TxRecord.
type TxRef struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// TxOutSlim is a compact output inside a TxRecord.
type TxOutSlim struct {
	Address string `json:"address,omitempty"`
	Value   uint64 `json:"value"`
}

// ScanProgress is the last fully persisted block height. Every effect of
// blocks at or below LastBlock is durable before the record is published.
type ScanProgress struct {
	LastBlock uint64    `json:"lastBlock"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeedMarker flips once when the seed set has been materialized.
type SeedMarker struct {
	Timestamp     time.Time `json:"timestamp"`
	OutpointCount uint64    `json:"outpointCount"`
}
