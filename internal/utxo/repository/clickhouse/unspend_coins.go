package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// UnspendCoins undoes the spends made by the listed transactions: matching
// coins get the unspent sentinel and an empty spender txid. The confirmed
// guard on spent_height keeps coins spent on chain out of the mutation.
func (r *Repository) UnspendCoins(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unspend_coins", chainID, network, err, start)
	}()

	if len(txids) == 0 {
		return nil
	}

	const query = `
ALTER TABLE utxo_coins
UPDATE spent_height = ?, spent_txid = ''
WHERE chain = ? AND network = ? AND spent_height < 0 AND spent_txid IN ?
SETTINGS mutations_sync = 1`

	if err = r.conn.Exec(ctx, query, model.HeightUnspent, chainID, network, txids); err != nil {
		return fmt.Errorf("unspend coins: %w", err)
	}
	return nil
}
