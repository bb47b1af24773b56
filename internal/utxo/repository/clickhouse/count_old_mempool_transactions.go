package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// CountOldMempoolTransactions returns how many unconfirmed transactions are
// older than the bound for a chain/network.
func (r *Repository) CountOldMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, before time.Time) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_old_mempool_transactions", chainID, network, err, start)
	}()

	const query = `
SELECT count() AS total
FROM utxo_transactions
WHERE chain = ? AND network = ? AND block_height = ? AND block_time < ?`

	rows, err := r.conn.Query(ctx, query, chainID, network, model.HeightMempool, before)
	if err != nil {
		return 0, fmt.Errorf("query old mempool transaction count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var total uint64
	if !rows.Next() {
		return 0, fmt.Errorf("old mempool transaction count not found")
	}

	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan old mempool transaction count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate old mempool transaction count: %w", err)
	}

	return total, nil
}
