package pruner

import (
	"errors"
	"fmt"
)

// ErrStopping is returned when cooperative cancellation interrupts a run.
// Candidates already processed stay applied; nothing is rolled back.
var ErrStopping = errors.New("pruning stopped")

// ConfigurationError reports a chain/network pair that cannot be pruned.
type ConfigurationError struct {
	Chain   string
	Network string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid chain configuration: chain=%q network=%q", e.Chain, e.Network)
}

// DataIntegrityError reports a closure member that is not actually prunable.
// The candidate reached confirmed chain state, or its spend graph carries a
// txid that is not a transaction hash; either way it must not be mutated.
type DataIntegrityError struct {
	SeedTxID string
	TxID     string
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation expanding %s at %s: %s", e.SeedTxID, e.TxID, e.Reason)
}

// ClosureTooLargeError reports a dependent set larger than maxDescendantCoins.
type ClosureTooLargeError struct {
	SeedTxID string
	Visited  int
}

func (e *ClosureTooLargeError) Error() string {
	return fmt.Sprintf("closure for %s exceeds %d descendant coins", e.SeedTxID, maxDescendantCoins)
}
