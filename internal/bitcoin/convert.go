// Package bitcoin implements the node-facing side of the taint engine.
package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/pkg/safe"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// BuildBlock maps a verbose block into a model.Block, decoding output
// addresses and the prevout address of every non-coinbase input.
func BuildBlock(src VerboseBlock, network model.Network, decoder ScriptDecoder) (*model.Block, error) {
	txs := make([]model.Transaction, 0, len(src.Tx))

	for _, tx := range src.Tx {
		inputs := make([]model.TxInput, 0, len(tx.Vin))
		for _, vin := range tx.Vin {
			input := model.TxInput{
				PrevTxID:   vin.Txid,
				PrevVout:   vin.Vout,
				IsCoinbase: vin.IsCoinbase(),
			}
			if vin.Prevout != nil {
				value, err := BtcToSatoshis(vin.Prevout.Value)
				if err != nil {
					return nil, fmt.Errorf("tx %s prevout %s:%d value: %w", tx.Txid, vin.Txid, vin.Vout, err)
				}
				addr, err := decoder.DecodeAddress(vin.Prevout.ScriptPubKey)
				if err != nil {
					return nil, fmt.Errorf("tx %s prevout %s:%d address: %w", tx.Txid, vin.Txid, vin.Vout, err)
				}
				input.HasPrevout = true
				input.PrevValue = value
				input.PrevAddress = addr
			}
			inputs = append(inputs, input)
		}

		outputs := make([]model.TxOutput, 0, len(tx.Vout))
		for idx, vout := range tx.Vout {
			if vout.Value < 0 {
				return nil, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
			}
			index, err := safe.Uint32(idx)
			if err != nil {
				return nil, fmt.Errorf("tx %s output index overflow: %w", tx.Txid, err)
			}
			value, err := BtcToSatoshis(vout.Value)
			if err != nil {
				return nil, fmt.Errorf("tx %s output %d safe value: %w", tx.Txid, idx, err)
			}
			addr, err := decoder.DecodeAddress(vout.ScriptPubKey)
			if err != nil {
				return nil, fmt.Errorf("decode address for tx %s output %d: %w", tx.Txid, idx, err)
			}
			outputs = append(outputs, model.TxOutput{
				Index:   index,
				Value:   value,
				Address: addr,
			})
		}

		txs = append(txs, model.Transaction{
			TxID:    tx.Txid,
			Inputs:  inputs,
			Outputs: outputs,
		})
	}

	return &model.Block{
		Network:   network,
		Height:    src.Height,
		Hash:      src.Hash,
		Timestamp: time.Unix(src.Time, 0).UTC(),
		Txs:       txs,
	}, nil
}
