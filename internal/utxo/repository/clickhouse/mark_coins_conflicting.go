package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// MarkCoinsConflicting sets the conflicting sentinel on the mint height of
// every coin minted by the listed transactions.
func (r *Repository) MarkCoinsConflicting(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_coins_conflicting", chainID, network, err, start)
	}()

	if len(txids) == 0 {
		return nil
	}

	const query = `
ALTER TABLE utxo_coins
UPDATE mint_height = ?
WHERE chain = ? AND network = ? AND mint_height < 0 AND mint_txid IN ?
SETTINGS mutations_sync = 1`

	if err = r.conn.Exec(ctx, query, model.HeightConflicting, chainID, network, txids); err != nil {
		return fmt.Errorf("mark coins conflicting: %w", err)
	}
	return nil
}
