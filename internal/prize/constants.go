package prize

// PokerQualifyingBets is the number of correct above-threshold picks a
// slate needs in one round to claim the poker prize.
const PokerQualifyingBets = 4

// SettlementLockKey names the process-wide lock guarding pool settlement
const SettlementLockKey = "prize-pool-settlement"

// Error context messages
const (
	ErrContextFailedToGetPool       = "failed to get prize pool"
	ErrContextFailedToGetResults    = "failed to get round results"
	ErrContextFailedToGetSettled    = "failed to get last settled matchday"
	ErrContextFailedToBeginTx       = "failed to begin settlement transaction"
	ErrContextFailedToSavePool      = "failed to save prize pool"
	ErrContextFailedToSavePayouts   = "failed to save payouts"
	ErrContextFailedToCommitTx      = "failed to commit settlement transaction"
	ErrContextFailedToCountPlayers  = "failed to count participants"
	ErrContextFailedToGetPayouts    = "failed to get payouts"
)

// Log messages
const (
	LogMsgSettleRoundCalled  = "SettleRound called"
	LogMsgRoundSettled       = "Round settled"
	LogMsgPokerJackpotGrows  = "No poker winner, jackpot accumulates"
	LogMsgOddsJackpotGrows   = "No highest-odds winner, jackpot accumulates"
)
