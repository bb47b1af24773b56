// Package pruner removes stale mempool transactions from the UTXO index and
// cascades conflicting-invalidation through their spend-dependency graphs.
package pruner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

// Config carries the pruning knobs. Either Chain/Network or Pairs must be
// set; when both are present the explicit pair wins.
type Config struct {
	Chain   model.Chain
	Network model.Network
	Pairs   []model.ChainNetwork

	PruneOldMempool bool
	PruneInvalid    bool
	DryRun          bool
	RunOnce         bool

	MempoolAgeDays int
	IntervalHours  int
	CandidateRate  int
}

// Service owns scheduling and composes the walker, cascade executor and
// pipeline per chain/network pair.
type Service struct {
	logger  *zap.Logger
	repo    ClickhouseRepository
	metrics PrunerMetrics
	cfg     Config

	interval   time.Duration
	mempoolAge time.Duration
	wait       func(context.Context, time.Duration) error
	now        func() time.Time
	rl         ratelimit.Limiter

	active   atomic.Bool
	stopping atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewService validates the config and builds a Service. Intervals above 72
// hours are rejected; longer periods belong to an external scheduler.
func NewService(repo ClickhouseRepository, metrics PrunerMetrics, cfg Config, logger *zap.Logger) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("pruner metrics is required")
	}

	if cfg.MempoolAgeDays <= 0 {
		cfg.MempoolAgeDays = defaultMempoolAgeDays
	}
	if cfg.IntervalHours <= 0 {
		cfg.IntervalHours = defaultIntervalHours
	}
	if cfg.IntervalHours > maxIntervalHours {
		return nil, fmt.Errorf("interval %dh exceeds %dh; use an external scheduler for longer periods", cfg.IntervalHours, maxIntervalHours)
	}
	if cfg.CandidateRate <= 0 {
		cfg.CandidateRate = defaultCandidateRate
	}

	s := &Service{
		logger:     logger,
		repo:       repo,
		metrics:    metrics,
		cfg:        cfg,
		interval:   time.Duration(cfg.IntervalHours) * time.Hour,
		mempoolAge: time.Duration(cfg.MempoolAgeDays) * 24 * time.Hour,
		now:        time.Now,
		rl:         ratelimit.New(cfg.CandidateRate),
		stopped:    make(chan struct{}),
	}
	s.wait = func(ctx context.Context, d time.Duration) error {
		return clock.WaitInterrupted(ctx, d, s.stopped)
	}
	return s, nil
}

// Run executes detect-and-clear passes until the context is canceled or
// Stop is called. With RunOnce set, a single pass is executed and Run
// returns so the owning process can shut down.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("starting pruning service",
		zap.Bool("old_mempool", s.cfg.PruneOldMempool),
		zap.Bool("invalid", s.cfg.PruneInvalid),
		zap.Bool("dry_run", s.cfg.DryRun),
		zap.Bool("run_once", s.cfg.RunOnce),
		zap.Duration("interval", s.interval),
		zap.Duration("mempool_age", s.mempoolAge),
	)

	if s.cfg.RunOnce {
		err := s.DetectAndClear(ctx)
		s.logger.Info("run-once pass finished; shutting down", zap.Error(err))
		if errors.Is(err, ErrStopping) {
			return nil
		}
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.stopping.Load() {
			return nil
		}
		if err := s.DetectAndClear(ctx); err != nil && !errors.Is(err, ErrStopping) {
			s.logger.Warn("detect and clear failed; next run unaffected", zap.Error(err))
		}
		if err := s.wait(ctx, s.interval); err != nil {
			return err
		}
	}
}

// Stop requests cooperative cancellation and cancels the periodic trigger.
// It returns immediately without waiting for an in-flight run to drain.
func (s *Service) Stop() {
	s.stopping.Store(true)
	s.stopOnce.Do(func() {
		close(s.stopped)
	})
}

// DetectAndClear runs one pruning pass over every configured pair. A trigger
// arriving while a pass is active is dropped, not queued. Pair failures are
// logged and do not stop later pairs.
func (s *Service) DetectAndClear(ctx context.Context) error {
	if !s.active.CompareAndSwap(false, true) {
		s.logger.Info("pruning pass already active; dropping trigger")
		return nil
	}
	defer s.active.Store(false)

	pairs, err := s.resolvePairs()
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		if s.stopping.Load() {
			return ErrStopping
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runPair(ctx, pair); err != nil {
			if errors.Is(err, ErrStopping) {
				return err
			}
			s.logger.Error("pruning pair failed",
				zap.String("chain", string(pair.Chain)),
				zap.String("network", string(pair.Network)),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *Service) resolvePairs() ([]model.ChainNetwork, error) {
	if s.cfg.Chain != "" || s.cfg.Network != "" {
		if s.cfg.Chain == "" || s.cfg.Network == "" {
			return nil, &ConfigurationError{Chain: string(s.cfg.Chain), Network: string(s.cfg.Network)}
		}
		return []model.ChainNetwork{{Chain: s.cfg.Chain, Network: s.cfg.Network}}, nil
	}

	for _, pair := range s.cfg.Pairs {
		if pair.Chain == "" || pair.Network == "" {
			return nil, &ConfigurationError{Chain: string(pair.Chain), Network: string(pair.Network)}
		}
	}
	return s.cfg.Pairs, nil
}

func (s *Service) runPair(ctx context.Context, pair model.ChainNetwork) error {
	logger := s.logger.With(
		zap.String("chain", string(pair.Chain)),
		zap.String("network", string(pair.Network)),
	)

	if s.cfg.PruneOldMempool {
		if err := s.runOldMempool(ctx, pair, logger); err != nil {
			return err
		}
	}
	if s.cfg.PruneInvalid {
		if err := s.runInvalid(ctx, pair, logger); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) runOldMempool(ctx context.Context, pair model.ChainNetwork, logger *zap.Logger) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveRun(pair.Chain, pair.Network, modeOldMempool, err, started)
	}()

	cutoff := s.now().Add(-s.mempoolAge)

	var total uint64
	total, err = s.repo.CountOldMempoolTransactions(ctx, pair.Chain, pair.Network, cutoff)
	if err != nil {
		return fmt.Errorf("count old mempool candidates: %w", err)
	}
	logger.Info("sweeping old mempool transactions",
		zap.Time("cutoff", cutoff),
		zap.Uint64("candidates", total),
		zap.Bool("dry_run", s.cfg.DryRun),
	)

	cursor, curErr := s.repo.OldMempoolTransactions(ctx, pair.Chain, pair.Network, cutoff)
	if curErr != nil {
		err = fmt.Errorf("open old mempool candidates: %w", curErr)
		return err
	}

	executor := newCascadeExecutor(s.repo, pair.Chain, pair.Network, s.cfg.DryRun, logger)
	pipeline := s.newPipeline(pair, modeOldMempool, logger)

	processed, drainErr := pipeline.drain(ctx, cursor, executor.RemoveOldMempool)
	if drainErr != nil {
		err = drainErr
		return err
	}
	logger.Info("old mempool sweep complete", zap.Int("processed", processed))
	return nil
}

func (s *Service) runInvalid(ctx context.Context, pair model.ChainNetwork, logger *zap.Logger) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveRun(pair.Chain, pair.Network, modeInvalid, err, started)
	}()

	logger.Info("cascading invalid transactions", zap.Bool("dry_run", s.cfg.DryRun))

	cursor, curErr := s.repo.InvalidTransactions(ctx, pair.Chain, pair.Network)
	if curErr != nil {
		err = fmt.Errorf("open invalid candidates: %w", curErr)
		return err
	}

	executor := newCascadeExecutor(s.repo, pair.Chain, pair.Network, s.cfg.DryRun, logger)
	pipeline := s.newPipeline(pair, modeInvalid, logger)

	processed, drainErr := pipeline.drain(ctx, cursor, executor.Invalidate)
	if drainErr != nil {
		err = drainErr
		return err
	}
	logger.Info("invalid cascade complete", zap.Int("processed", processed))
	return nil
}

func (s *Service) newPipeline(pair model.ChainNetwork, mode string, logger *zap.Logger) *candidatePipeline {
	return &candidatePipeline{
		logger:   logger.Named("pipeline"),
		walker:   newClosureWalker(s.repo, pair.Chain, pair.Network, logger),
		metrics:  s.metrics,
		rl:       s.rl,
		stopping: &s.stopping,
		chain:    pair.Chain,
		network:  pair.Network,
		mode:     mode,
	}
}
