package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// InvalidTransactions returns a cursor over transactions carrying the invalid
// height sentinel for a chain/network.
func (r *Repository) InvalidTransactions(ctx context.Context, chainID model.Chain, network model.Network) (chain.TransactionCursor, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("invalid_transactions", chainID, network, err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	block_time
FROM utxo_transactions
WHERE chain = ? AND network = ? AND block_height = ?
ORDER BY block_time ASC`

	rows, err := r.conn.Query(ctx, query, chainID, network, model.HeightInvalid)
	if err != nil {
		return nil, fmt.Errorf("query invalid transactions: %w", err)
	}

	return &transactionCursor{rows: rows, chain: chainID, network: network}, nil
}
