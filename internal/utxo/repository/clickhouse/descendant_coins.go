package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// DescendantCoins returns a cursor over every coin reachable from the seed
// transaction's outputs via spend edges. Expansion is depth-unbounded; the
// caller is responsible for enforcing its own ceiling while consuming.
func (r *Repository) DescendantCoins(ctx context.Context, chainID model.Chain, network model.Network, seedTxID string) (chain.CoinCursor, error) {
	start := time.Now()
	r.metrics.Observe("descendant_coins", chainID, network, nil, start)

	return newDescendantCoinsCursor(r.conn, chainID, network, seedTxID), nil
}
