package model

import "time"

// Transaction represents an indexed transaction as seen by the pruner.
// BlockHeight is either a confirmed height or one of the Height* sentinels.
type Transaction struct {
	Chain       Chain
	Network     Network
	TxID        string
	BlockHeight int64
	BlockTime   time.Time
}
