package pruner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=cursor_mocks_test.go -package=$GOPACKAGE github.com/goodnatureofminers/blockinsight7000-pruner/internal/utxo/chain TransactionCursor,CoinCursor

type (
	// ClosureWalker expands a seed transaction into its full dependent
	// transaction set, or fails without partial output.
	ClosureWalker interface {
		Walk(ctx context.Context, seedTxID string) ([]string, error)
	}

	// CascadeExecutor applies one candidate's mutation set.
	CascadeExecutor interface {
		RemoveOldMempool(ctx context.Context, txids []string) error
		Invalidate(ctx context.Context, txids []string) error
	}

	// PrunerMetrics tracks run and candidate outcomes.
	PrunerMetrics interface {
		ObserveRun(chain model.Chain, network model.Network, mode string, err error, started time.Time)
		ObserveCandidate(chain model.Chain, network model.Network, mode string, err error, started time.Time)
		ObserveClosureSize(chain model.Chain, network model.Network, mode string, size int)
	}

	ClickhouseRepository interface {
		CountOldMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, before time.Time) (uint64, error)
		OldMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, before time.Time) (chain.TransactionCursor, error)
		InvalidTransactions(ctx context.Context, chainID model.Chain, network model.Network) (chain.TransactionCursor, error)
		DescendantCoins(ctx context.Context, chainID model.Chain, network model.Network, seedTxID string) (chain.CoinCursor, error)
		RemoveMempoolTransactions(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error
		RemoveMempoolCoins(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error
		MarkTransactionsConflicting(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error
		UnspendCoins(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error
		MarkCoinsConflicting(ctx context.Context, chainID model.Chain, network model.Network, txids []string) error
	}
)
