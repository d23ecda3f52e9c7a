package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BetType identifies the market a prediction was placed on
type BetType string

const (
	BetTypeEsito        BetType = "esito"
	BetTypeOverUnder    BetType = "over_under"
	BetTypeGoalNoGoal   BetType = "goal_nogoal"
	BetTypeDoppiaChance BetType = "doppia_chance"
	BetTypeMultigoal    BetType = "multigoal"
)

// Over/under outcomes (implicit 2.5 goal line)
const (
	OutcomeOver  = "OVER"
	OutcomeUnder = "UNDER"
)

// Goal/no-goal outcomes
const (
	OutcomeGoal   = "GG"
	OutcomeNoGoal = "NG"
)

// Double chance outcomes
const (
	OutcomeHomeOrDraw = "1X"
	OutcomeHomeOrAway = "12"
	OutcomeDrawOrAway = "X2"
)

// validOutcomes enumerates the accepted outcome values per market
var validOutcomes = map[BetType]map[string]struct{}{
	BetTypeEsito: {
		string(OutcomeHome): {}, string(OutcomeDraw): {}, string(OutcomeAway): {},
	},
	BetTypeOverUnder: {
		OutcomeOver: {}, OutcomeUnder: {},
	},
	BetTypeGoalNoGoal: {
		OutcomeGoal: {}, OutcomeNoGoal: {},
	},
	BetTypeDoppiaChance: {
		OutcomeHomeOrDraw: {}, OutcomeHomeOrAway: {}, OutcomeDrawOrAway: {},
	},
	BetTypeMultigoal: {
		"O0.5": {}, "U0.5": {}, "O1.5": {}, "U1.5": {},
		"O2.5": {}, "U2.5": {}, "O3.5": {}, "U3.5": {},
	},
}

// Prediction is one pick on one match, with the odds locked in at selection time
type Prediction struct {
	MatchID string  `json:"match_id"`
	BetType BetType `json:"bet_type"`
	Outcome string  `json:"outcome"`
	Odds    float64 `json:"odds"`
}

// Validate checks that the outcome belongs to the market's enumerated value set
// and that the odds are a positive number.
func (p Prediction) Validate() error {
	outcomes, ok := validOutcomes[p.BetType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidBetType, p.BetType)
	}
	if _, ok := outcomes[p.Outcome]; !ok {
		return fmt.Errorf("%w: %q is not valid for market %s", ErrInvalidOutcome, p.Outcome, p.BetType)
	}
	if p.Odds <= 0 {
		return fmt.Errorf("%w: odds must be positive, got %v", ErrInvalidOutcome, p.Odds)
	}
	return nil
}

// ParseMultigoalLine splits a multigoal outcome like "O2.5" into its
// over/under direction and goal line.
func ParseMultigoalLine(outcome string) (over bool, line float64, err error) {
	if len(outcome) < 2 {
		return false, 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	switch {
	case strings.HasPrefix(outcome, "O"):
		over = true
	case strings.HasPrefix(outcome, "U"):
		over = false
	default:
		return false, 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	line, err = strconv.ParseFloat(outcome[1:], 64)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	return over, line, nil
}

// PredictionResult is a graded Prediction. It is derived by the scoring
// engine and never constructed independently.
type PredictionResult struct {
	Prediction
	IsCorrect    bool    `json:"is_correct"`
	PointsEarned float64 `json:"points_earned"`
}
