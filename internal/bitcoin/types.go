package bitcoin

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScriptDecoder extracts a human-readable address from a scriptPubKey.
	ScriptDecoder interface {
		DecodeAddress(spk ScriptPubKey) (string, error)
	}
)

// ScriptPubKey is the node's scriptPubKey object.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	Address   string   `json:"address"`
	Addresses []string `json:"addresses"`
}

// Prevout annotates an input with the output it spends (getblock verbosity 3).
type Prevout struct {
	Value        float64      `json:"value"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// Vin is one input of a verbose transaction.
type Vin struct {
	Coinbase string   `json:"coinbase"`
	Txid     string   `json:"txid"`
	Vout     uint32   `json:"vout"`
	Sequence uint32   `json:"sequence"`
	Prevout  *Prevout `json:"prevout"`
}

// IsCoinbase reports whether the input creates newly issued coins.
func (v Vin) IsCoinbase() bool {
	return v.Coinbase != ""
}

// Vout is one output of a verbose transaction.
type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// VerboseTx is a fully expanded transaction of a verbose block.
type VerboseTx struct {
	Txid string `json:"txid"`
	Vin  []Vin  `json:"vin"`
	Vout []Vout `json:"vout"`
}

// VerboseBlock is the result of getblock with verbosity 3: all transactions
// expanded, every input annotated with its prevout.
type VerboseBlock struct {
	Hash   string      `json:"hash"`
	Height uint64      `json:"height"`
	Time   int64       `json:"time"`
	Tx     []VerboseTx `json:"tx"`
}

// ChainInfo is the subset of getblockchaininfo the engine relies on.
type ChainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               uint64  `json:"blocks"`
	Headers              uint64  `json:"headers"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
}

// NetworkInfo is the subset of getnetworkinfo the engine relies on.
type NetworkInfo struct {
	Version         int64  `json:"version"`
	Subversion      string `json:"subversion"`
	Connections     int64  `json:"connections"`
	NetworkActive   bool   `json:"networkactive"`
	ProtocolVersion int64  `json:"protocolversion"`
}

// MempoolInfo is the subset of getmempoolinfo the engine relies on.
type MempoolInfo struct {
	Size  uint64 `json:"size"`
	Bytes uint64 `json:"bytes"`
}

// IndexInfo is one entry of getindexinfo.
type IndexInfo struct {
	Synced     bool   `json:"synced"`
	BestHeight uint64 `json:"best_block_height"`
}
