package pruner

const (
	// maxDescendantCoins caps how many coins a single candidate's closure may
	// visit before the run is aborted. Kept fixed.
	// TODO: promote to a config flag if an operator ever needs wider sweeps.
	maxDescendantCoins = 50

	defaultMempoolAgeDays = 7
	defaultIntervalHours  = 12
	maxIntervalHours      = 72

	// defaultCandidateRate limits how many candidates per second one run may
	// push through the store.
	defaultCandidateRate = 25
)

const (
	modeOldMempool = "old_mempool"
	modeInvalid    = "invalid"
)
