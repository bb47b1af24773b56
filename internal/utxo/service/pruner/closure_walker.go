package pruner

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// closureWalker expands a seed transaction into the set of txids connected
// to it via spend relationships. The walk validates every visited coin: a
// confirmed mint or spend means the candidate is not prunable and the whole
// walk fails with no partial output.
type closureWalker struct {
	repo     ClickhouseRepository
	chain    model.Chain
	network  model.Network
	maxCoins int
	logger   *zap.Logger
}

func newClosureWalker(repo ClickhouseRepository, chainID model.Chain, network model.Network, logger *zap.Logger) *closureWalker {
	return &closureWalker{
		repo:     repo,
		chain:    chainID,
		network:  network,
		maxCoins: maxDescendantCoins,
		logger:   logger.Named("closureWalker"),
	}
}

func (w *closureWalker) Walk(ctx context.Context, seedTxID string) ([]string, error) {
	cursor, err := w.repo.DescendantCoins(ctx, w.chain, w.network, seedTxID)
	if err != nil {
		return nil, fmt.Errorf("open descendant coins for %s: %w", seedTxID, err)
	}
	defer func() {
		if closeErr := cursor.Close(); closeErr != nil {
			w.logger.Warn("close descendant coin cursor failed", zap.Error(closeErr))
		}
	}()

	visited := 0
	seen := map[string]struct{}{seedTxID: {}}
	affected := []string{seedTxID}

	for {
		coin, err := cursor.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("expand descendants of %s: %w", seedTxID, err)
		}
		if coin == nil {
			break
		}

		if model.IsConfirmed(coin.MintHeight) {
			return nil, &DataIntegrityError{
				SeedTxID: seedTxID,
				TxID:     coin.MintTxID,
				Reason:   fmt.Sprintf("confirmed mint height %d", coin.MintHeight),
			}
		}
		if model.IsConfirmed(coin.SpentHeight) {
			return nil, &DataIntegrityError{
				SeedTxID: seedTxID,
				TxID:     coin.MintTxID,
				Reason:   fmt.Sprintf("confirmed spent height %d", coin.SpentHeight),
			}
		}

		visited++
		if visited > w.maxCoins {
			return nil, &ClosureTooLargeError{SeedTxID: seedTxID, Visited: visited}
		}

		if !coin.Spent() {
			continue
		}
		if _, err := chainhash.NewHashFromStr(coin.SpentTxID); err != nil {
			return nil, &DataIntegrityError{
				SeedTxID: seedTxID,
				TxID:     coin.SpentTxID,
				Reason:   "spender txid is not a transaction hash",
			}
		}
		if _, ok := seen[coin.SpentTxID]; !ok {
			seen[coin.SpentTxID] = struct{}{}
			affected = append(affected, coin.SpentTxID)
		}
	}

	w.logger.Debug("closure computed",
		zap.String("seed", seedTxID),
		zap.Int("coins", visited),
		zap.Int("affected", len(affected)),
	)
	return affected, nil
}
