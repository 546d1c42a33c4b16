package model

import "time"

// Block is a verbose-with-prevouts block: every non-coinbase input carries
// the value and script of the output it spends, so classifying a transaction
// never needs a second node round-trip.
type Block struct {
	Network   Network
	Height    uint64
	Hash      string
	Timestamp time.Time
	Txs       []Transaction
}

// Transaction is one transaction of a verbose block.
type Transaction struct {
	TxID    string
	Inputs  []TxInput
	Outputs []TxOutput
}

// IsCoinbase reports whether the transaction creates newly issued coins.
func (t Transaction) IsCoinbase() bool {
	return len(t.Inputs) == 1 && t.Inputs[0].IsCoinbase
}

// TxInput references a previously created output, annotated with that
// output's value and decoded address when the node supplied a prevout.
type TxInput struct {
	PrevTxID    string
	PrevVout    uint32
	IsCoinbase  bool
	HasPrevout  bool
	PrevValue   uint64
	PrevAddress string
}

// TxOutput is one output of a transaction. Address is empty for
// non-standard scripts.
type TxOutput struct {
	Index   uint32
	Value   uint64
	Address string
}
