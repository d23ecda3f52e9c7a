package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSchedineSubmitted  = "schedine_submitted_total"
	MetricNameSchedineScored     = "schedine_scored_total"
	MetricNameRoundsSettled      = "rounds_settled_total"
	MetricNamePayoutsAwarded     = "payouts_awarded_total"
	MetricNamePokerJackpot       = "poker_jackpot_amount"
	MetricNameHighestOddsJackpot = "highest_odds_jackpot_amount"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSchedineSubmitted  = "Total number of schedine submitted"
	HelpTextSchedineScored     = "Total number of schedine scored"
	HelpTextRoundsSettled      = "Total number of rounds settled"
	HelpTextPayoutsAwarded     = "Total prize money awarded, by prize type"
	HelpTextPokerJackpot       = "Current accumulated poker-prize jackpot"
	HelpTextHighestOddsJackpot = "Current accumulated highest-odds jackpot"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelPrizeType = "prize_type"
)

// HTTPLatencyBuckets defines the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
