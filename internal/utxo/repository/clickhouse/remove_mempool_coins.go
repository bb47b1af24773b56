package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// RemoveMempoolCoins deletes coins minted by the listed transactions,
// restricted to rows whose mint still carries the mempool sentinel.
func (r *Repository) RemoveMempoolCoins(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("remove_mempool_coins", chainID, network, err, start)
	}()

	if len(txids) == 0 {
		return nil
	}

	const query = `
ALTER TABLE utxo_coins
DELETE WHERE chain = ? AND network = ? AND mint_height = ? AND mint_txid IN ?
SETTINGS mutations_sync = 1`

	if err = r.conn.Exec(ctx, query, chainID, network, model.HeightMempool, txids); err != nil {
		return fmt.Errorf("remove mempool coins: %w", err)
	}
	return nil
}
