package model

type Chain string
type Network string

var (
	BTC Chain = "BTC"
	LTC Chain = "LTC"
	RVN Chain = "RVN"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// ChainNetwork identifies one indexed chain/network pair.
type ChainNetwork struct {
	Chain   Chain
	Network Network
}
