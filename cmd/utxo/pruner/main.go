package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
	clickhouseRepo "github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/service/pruner"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"UTXO_PRUNER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Chain         string `long:"chain" env:"UTXO_PRUNER_CHAIN" description:"chain to prune (e.g. BTC)"`
	Network       string `long:"network" env:"UTXO_PRUNER_NETWORK" description:"network to prune (e.g. mainnet)"`
	Chains        string `long:"chains" env:"UTXO_PRUNER_CHAINS" description:"comma-separated CHAIN:network pairs, used when no explicit pair is set"`

	PruneOldMempool bool `long:"prune-old-mempool" env:"UTXO_PRUNER_PRUNE_OLD_MEMPOOL" description:"sweep mempool transactions older than the age threshold"`
	PruneInvalid    bool `long:"prune-invalid" env:"UTXO_PRUNER_PRUNE_INVALID" description:"cascade invalidation for transactions flagged invalid"`
	DryRun          bool `long:"dry-run" env:"UTXO_PRUNER_DRY_RUN" description:"compute affected sets but issue no mutations"`
	RunOnce         bool `long:"run-once" env:"UTXO_PRUNER_RUN_ONCE" description:"execute a single pass and exit"`

	MempoolAgeDays int `long:"mempool-age-days" env:"UTXO_PRUNER_MEMPOOL_AGE_DAYS" default:"7" description:"age threshold for the old-mempool sweep"`
	IntervalHours  int `long:"interval-hours" env:"UTXO_PRUNER_INTERVAL_HOURS" default:"12" description:"hours between scheduled passes (max 72)"`
	CandidateRate  int `long:"candidate-rate" env:"UTXO_PRUNER_CANDIDATE_RATE" default:"25" description:"max candidates per second per run"`

	MetricsAddr string `long:"metrics-addr" env:"UTXO_PRUNER_METRICS_ADDR" default:":9091" description:"prometheus metrics listen address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("utxo pruner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouseRepo.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository failed", zap.Error(closeErr))
		}
	}()

	pairs, err := parsePairs(cfg.Chains)
	if err != nil {
		return err
	}

	svc, err := pruner.NewService(repo, metrics.NewPruner(), pruner.Config{
		Chain:           model.Chain(cfg.Chain),
		Network:         model.Network(cfg.Network),
		Pairs:           pairs,
		PruneOldMempool: cfg.PruneOldMempool,
		PruneInvalid:    cfg.PruneInvalid,
		DryRun:          cfg.DryRun,
		RunOnce:         cfg.RunOnce,
		MempoolAgeDays:  cfg.MempoolAgeDays,
		IntervalHours:   cfg.IntervalHours,
		CandidateRate:   cfg.CandidateRate,
	}, logger)
	if err != nil {
		return err
	}

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if serveErr := metricsServer.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		svc.Stop()
		if shutdownErr := metricsServer.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(shutdownErr))
		}
	}()

	return svc.Run(ctx)
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// parsePairs parses "BTC:mainnet,LTC:testnet" into chain/network pairs.
func parsePairs(raw string) ([]model.ChainNetwork, error) {
	if raw == "" {
		return nil, nil
	}

	var pairs []model.ChainNetwork
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts := strings.SplitN(token, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid chain pair %q, expected CHAIN:network", token)
		}
		pairs = append(pairs, model.ChainNetwork{
			Chain:   model.Chain(parts[0]),
			Network: model.Network(parts[1]),
		})
	}
	return pairs, nil
}
