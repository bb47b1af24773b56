// Package chain defines interfaces shared between the pruning components
// and the storage layer.
package chain

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// TransactionCursor iterates lazily over an ordered set of transactions.
// Next returns (nil, nil) once the set is exhausted. Callers must Close the
// cursor when done.
type TransactionCursor interface {
	Next(ctx context.Context) (*model.Transaction, error)
	Close() error
}

// CoinCursor iterates lazily over the coins reachable from a seed
// transaction via mint/spend edges, one hop at a time. Next returns
// (nil, nil) once the expansion is exhausted.
type CoinCursor interface {
	Next(ctx context.Context) (*model.Coin, error)
	Close() error
}
