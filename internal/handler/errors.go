package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Schedina operation error messages
	ErrMsgSubmitSchedinaFailed = "Failed to submit schedina"
	ErrMsgGetResultFailed      = "Failed to get schedina result"
	ErrMsgInvalidSchedinaID    = "Invalid schedina ID"

	// Round operation error messages
	ErrMsgEvaluateRoundFailed = "Failed to evaluate round"
	ErrMsgSettleRoundFailed   = "Failed to settle round"
	ErrMsgGetDistribFailed    = "Failed to compute prize distribution"

	// Prize operation error messages
	ErrMsgGetPoolFailed = "Failed to get prize pool"
	ErrMsgGetFeeFailed  = "Failed to compute entry fee"

	// Ranking operation error messages
	ErrMsgGetStandingsFailed = "Failed to get standings"
	ErrMsgGetWeeklyFailed    = "Failed to get weekly ranking"
)
