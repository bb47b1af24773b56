// Package model defines domain records for the UTXO pruning service.
package model

// Height sentinels stored in place of a real block height. All sentinels are
// negative so they are disjoint from confirmed heights (>= 0).
const (
	// HeightMempool marks an unconfirmed transaction or mint.
	HeightMempool int64 = -1
	// HeightUnspent marks a coin with no confirmed spend.
	HeightUnspent int64 = -2
	// HeightConflicting marks a record invalidated by a conflicting spend.
	HeightConflicting int64 = -3
	// HeightInvalid marks a transaction flagged invalid and awaiting cascade.
	HeightInvalid int64 = -4
)

// IsConfirmed reports whether h is a real block height rather than a sentinel.
func IsConfirmed(h int64) bool {
	return h >= 0
}
