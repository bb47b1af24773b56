package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// OldMempoolTransactions returns a cursor over unconfirmed transactions whose
// block time is older than the bound. Rows are streamed; the caller owns the
// cursor and must close it.
func (r *Repository) OldMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, before time.Time) (chain.TransactionCursor, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("old_mempool_transactions", chainID, network, err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	block_time
FROM utxo_transactions
WHERE chain = ? AND network = ? AND block_height = ? AND block_time < ?
ORDER BY block_time ASC`

	rows, err := r.conn.Query(ctx, query, chainID, network, model.HeightMempool, before)
	if err != nil {
		return nil, fmt.Errorf("query old mempool transactions: %w", err)
	}

	return &transactionCursor{rows: rows, chain: chainID, network: network}, nil
}
