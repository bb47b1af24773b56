package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// transactionCursor streams transaction rows one at a time.
type transactionCursor struct {
	rows    driver.Rows
	chain   model.Chain
	network model.Network
}

func (c *transactionCursor) Next(ctx context.Context) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transactions: %w", err)
		}
		return nil, nil
	}

	tx := model.Transaction{Chain: c.chain, Network: c.network}
	if err := c.rows.Scan(&tx.TxID, &tx.BlockHeight, &tx.BlockTime); err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	return &tx, nil
}

func (c *transactionCursor) Close() error {
	if err := c.rows.Close(); err != nil {
		return fmt.Errorf("close transaction cursor: %w", err)
	}
	return nil
}

// descendantCoinsCursor expands the spend graph outward from a seed
// transaction, one hop per query. Spender txids discovered in the current
// hop form the frontier for the next one; txids are expanded at most once,
// so cyclic spend data cannot loop the cursor.
type descendantCoinsCursor struct {
	conn    Conn
	chain   model.Chain
	network model.Network

	frontier []string
	expanded map[string]struct{}
	pending  []string
	rows     driver.Rows
}

func newDescendantCoinsCursor(conn Conn, chainID model.Chain, network model.Network, seedTxID string) *descendantCoinsCursor {
	return &descendantCoinsCursor{
		conn:     conn,
		chain:    chainID,
		network:  network,
		frontier: []string{seedTxID},
		expanded: map[string]struct{}{seedTxID: {}},
	}
}

func (c *descendantCoinsCursor) Next(ctx context.Context) (*model.Coin, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if c.rows == nil {
			if len(c.frontier) == 0 {
				return nil, nil
			}
			if err := c.queryHop(ctx); err != nil {
				return nil, err
			}
		}

		if c.rows.Next() {
			coin := model.Coin{Chain: c.chain, Network: c.network}
			if err := c.rows.Scan(
				&coin.MintTxID,
				&coin.MintIndex,
				&coin.MintHeight,
				&coin.Value,
				&coin.SpentTxID,
				&coin.SpentHeight,
			); err != nil {
				return nil, fmt.Errorf("scan descendant coin: %w", err)
			}

			if coin.Spent() {
				if _, ok := c.expanded[coin.SpentTxID]; !ok {
					c.expanded[coin.SpentTxID] = struct{}{}
					c.pending = append(c.pending, coin.SpentTxID)
				}
			}
			return &coin, nil
		}

		if err := c.rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate descendant coins: %w", err)
		}
		if err := c.rows.Close(); err != nil {
			return nil, fmt.Errorf("close hop rows: %w", err)
		}
		c.rows = nil
		c.frontier = c.pending
		c.pending = nil
	}
}

func (c *descendantCoinsCursor) queryHop(ctx context.Context) error {
	const query = `
SELECT
	mint_txid,
	mint_index,
	mint_height,
	value,
	spent_txid,
	spent_height
FROM utxo_coins
WHERE chain = ? AND network = ? AND mint_txid IN ?
ORDER BY mint_txid ASC, mint_index ASC`

	rows, err := c.conn.Query(ctx, query, c.chain, c.network, c.frontier)
	if err != nil {
		return fmt.Errorf("query descendant coins: %w", err)
	}
	c.rows = rows
	return nil
}

func (c *descendantCoinsCursor) Close() error {
	if c.rows == nil {
		return nil
	}
	rows := c.rows
	c.rows = nil
	if err := rows.Close(); err != nil {
		return fmt.Errorf("close coin cursor: %w", err)
	}
	return nil
}
