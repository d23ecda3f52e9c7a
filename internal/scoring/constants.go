package scoring

// Error context messages
const (
	ErrContextFailedToGetSchedina  = "failed to get schedina"
	ErrContextFailedToGetSchedine  = "failed to get schedine for matchday"
	ErrContextFailedToGetMatches   = "failed to get matches for matchday"
	ErrContextFailedToSaveResult   = "failed to save schedina result"
	ErrContextFailedToSaveSchedina = "failed to save schedina"
)

// Log messages
const (
	LogMsgEvaluateRoundCalled  = "EvaluateRound called"
	LogMsgRoundEvaluated       = "Round evaluated"
	LogMsgSkippedUnlocked      = "Skipping unlocked schedina"
	LogMsgSchedinaSubmitted    = "Schedina submitted"
)
