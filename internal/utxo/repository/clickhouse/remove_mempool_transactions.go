package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// RemoveMempoolTransactions deletes the listed transactions, restricted to
// rows still carrying the mempool sentinel. Confirmed rows with the same
// txid are never touched. The mutation is awaited before returning.
func (r *Repository) RemoveMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("remove_mempool_transactions", chainID, network, err, start)
	}()

	if len(txids) == 0 {
		return nil
	}

	const query = `
ALTER TABLE utxo_transactions
DELETE WHERE chain = ? AND network = ? AND block_height = ? AND txid IN ?
SETTINGS mutations_sync = 1`

	if err = r.conn.Exec(ctx, query, chainID, network, model.HeightMempool, txids); err != nil {
		return fmt.Errorf("remove mempool transactions: %w", err)
	}
	return nil
}
