package pruner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-pruner/pkg/workerpool"
)

// cascadeExecutor applies the delete or invalidate mutation set for one
// affected set. Mutations within a cascade run concurrently and are jointly
// awaited; there is no cross-collection atomicity, and both operations are
// idempotent under re-run.
type cascadeExecutor struct {
	repo    ClickhouseRepository
	chain   model.Chain
	network model.Network
	dryRun  bool
	logger  *zap.Logger
}

func newCascadeExecutor(repo ClickhouseRepository, chainID model.Chain, network model.Network, dryRun bool, logger *zap.Logger) *cascadeExecutor {
	return &cascadeExecutor{
		repo:    repo,
		chain:   chainID,
		network: network,
		dryRun:  dryRun,
		logger:  logger.Named("cascade"),
	}
}

// RemoveOldMempool deletes the affected transactions and their minted coins,
// both restricted to the mempool sentinel. A crash between the two deletes
// can orphan coin rows; a later run finds the owning transaction gone and
// the orphans are harmless.
func (e *cascadeExecutor) RemoveOldMempool(ctx context.Context, txids []string) error {
	if e.dryRun {
		e.logger.Info("dry run: would remove mempool records",
			zap.Int("affected", len(txids)),
			zap.Strings("txids", txids),
		)
		return nil
	}

	tasks := []workerpool.Task{
		{Name: "remove_transactions", Run: func(ctx context.Context) error {
			return e.repo.RemoveMempoolTransactions(ctx, e.chain, e.network, txids)
		}},
		{Name: "remove_coins", Run: func(ctx context.Context) error {
			return e.repo.RemoveMempoolCoins(ctx, e.chain, e.network, txids)
		}},
	}
	if err := workerpool.Run(ctx, len(tasks), tasks); err != nil {
		return fmt.Errorf("remove cascade for %d txids: %w", len(txids), err)
	}
	return nil
}

// Invalidate marks the affected transactions conflicting, resets coins they
// spent to unspent, and marks coins they minted conflicting. The three
// mutations carry no ordering guarantee among themselves.
func (e *cascadeExecutor) Invalidate(ctx context.Context, txids []string) error {
	if e.dryRun {
		e.logger.Info("dry run: would invalidate records",
			zap.Int("affected", len(txids)),
			zap.Strings("txids", txids),
		)
		return nil
	}

	tasks := []workerpool.Task{
		{Name: "mark_transactions_conflicting", Run: func(ctx context.Context) error {
			return e.repo.MarkTransactionsConflicting(ctx, e.chain, e.network, txids)
		}},
		{Name: "unspend_coins", Run: func(ctx context.Context) error {
			return e.repo.UnspendCoins(ctx, e.chain, e.network, txids)
		}},
		{Name: "mark_coins_conflicting", Run: func(ctx context.Context) error {
			return e.repo.MarkCoinsConflicting(ctx, e.chain, e.network, txids)
		}},
	}
	if err := workerpool.Run(ctx, len(tasks), tasks); err != nil {
		return fmt.Errorf("invalidate cascade for %d txids: %w", len(txids), err)
	}
	return nil
}
