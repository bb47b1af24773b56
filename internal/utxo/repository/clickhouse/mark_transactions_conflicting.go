package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// MarkTransactionsConflicting sets the conflicting sentinel on the listed
// transactions. Confirmed rows are excluded by the height guard.
func (r *Repository) MarkTransactionsConflicting(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_transactions_conflicting", chainID, network, err, start)
	}()

	if len(txids) == 0 {
		return nil
	}

	const query = `
ALTER TABLE utxo_transactions
UPDATE block_height = ?
WHERE chain = ? AND network = ? AND block_height < 0 AND txid IN ?
SETTINGS mutations_sync = 1`

	if err = r.conn.Exec(ctx, query, model.HeightConflicting, chainID, network, txids); err != nil {
		return fmt.Errorf("mark transactions conflicting: %w", err)
	}
	return nil
}
