package pruner

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// candidatePipeline drives candidates through closure expansion and cascade
// execution, exactly one candidate in flight. The stopping flag is polled at
// candidate boundaries only; an in-flight cascade is never interrupted.
type candidatePipeline struct {
	logger   *zap.Logger
	walker   ClosureWalker
	metrics  PrunerMetrics
	rl       ratelimit.Limiter
	stopping *atomic.Bool
	chain    model.Chain
	network  model.Network
	mode     string
}

// drain consumes the cursor sequentially, applying the cascade for each
// candidate before requesting the next. It returns how many candidates were
// fully processed. A walker or cascade failure aborts immediately; already
// processed candidates stay applied.
func (p *candidatePipeline) drain(ctx context.Context, cursor chain.TransactionCursor, apply func(context.Context, []string) error) (int, error) {
	defer func() {
		if err := cursor.Close(); err != nil {
			p.logger.Warn("close candidate cursor failed", zap.Error(err))
		}
	}()

	processed := 0
	for {
		if p.stopping.Load() {
			p.logger.Info("stopping; retaining progress", zap.Int("processed", processed))
			return processed, ErrStopping
		}
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		p.rl.Take()

		tx, err := cursor.Next(ctx)
		if err != nil {
			return processed, err
		}
		if tx == nil {
			p.logger.Info("candidates exhausted", zap.Int("processed", processed))
			return processed, nil
		}

		started := time.Now()
		affected, err := p.walker.Walk(ctx, tx.TxID)
		if err != nil {
			p.metrics.ObserveCandidate(p.chain, p.network, p.mode, err, started)
			return processed, err
		}
		p.metrics.ObserveClosureSize(p.chain, p.network, p.mode, len(affected))

		if err := apply(ctx, affected); err != nil {
			p.metrics.ObserveCandidate(p.chain, p.network, p.mode, err, started)
			return processed, err
		}
		p.metrics.ObserveCandidate(p.chain, p.network, p.mode, nil, started)
		processed++
	}
}
