package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
)

// scriptDecoder extracts a single human-readable address from scriptPubKey
// results. Non-standard scripts decode to the empty string.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for extracting addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

func (d *scriptDecoder) DecodeAddress(spk ScriptPubKey) (string, error) {
	if spk.Address != "" {
		return spk.Address, nil
	}
	if len(spk.Addresses) > 0 {
		return spk.Addresses[0], nil
	}
	if spk.Hex == "" {
		return "", nil
	}

	scriptBytes, err := hex.DecodeString(spk.Hex)
	if err != nil {
		return "", err
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", nil
	}
	return addrs[0].EncodeAddress(), nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
