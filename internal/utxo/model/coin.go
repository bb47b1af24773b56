package model

// Coin represents a tracked transaction output with its mint and spend state.
// MintHeight and SpentHeight carry either confirmed heights or sentinels;
// SpentTxID is empty while the coin is unspent.
type Coin struct {
	Chain       Chain
	Network     Network
	MintTxID    string
	MintIndex   uint32
	MintHeight  int64
	Value       uint64
	SpentTxID   string
	SpentHeight int64
}

// Spent reports whether the coin carries a spending transaction.
func (c Coin) Spent() bool {
	return c.SpentTxID != ""
}
