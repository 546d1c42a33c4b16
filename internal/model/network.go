// Package model defines domain models for taint tracking.
package model

// Network names a bitcoin network the node is expected to run on.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
