package domain

import (
	"time"

	"github.com/google/uuid"
)

// Schedina is one participant's slate of predictions for a matchday.
// It is mutable while the participant is picking and becomes immutable
// once locked at submission.
type Schedina struct {
	ID            uuid.UUID    `json:"id"`
	ParticipantID string       `json:"participant_id"`
	Matchday      int          `json:"matchday"`
	Predictions   []Prediction `json:"predictions"`
	SubmittedAt   time.Time    `json:"submitted_at"`
	IsLocked      bool         `json:"is_locked"`
}

// IsComplete reports whether the slate holds exactly one prediction per
// match of the round.
func (s Schedina) IsComplete(slateSize int) bool {
	return len(s.Predictions) == slateSize
}

// SchedinaResult is the scored, locked projection of a Schedina. Produced
// once per schedina per round; immutable thereafter.
type SchedinaResult struct {
	ID                 uuid.UUID          `json:"id"`
	ParticipantID      string             `json:"participant_id"`
	Matchday           int                `json:"matchday"`
	Predictions        []PredictionResult `json:"predictions"`
	SubmittedAt        time.Time          `json:"submitted_at"`
	IsLocked           bool               `json:"is_locked"`
	TotalPoints        float64            `json:"total_points"`
	CorrectPredictions int                `json:"correct_predictions"`
	BonusPoints        float64            `json:"bonus_points"`
	PenaltyPoints      float64            `json:"penalty_points"`
	FinalPoints        float64            `json:"final_points"`
}

// ScoreDetails carries the informational counters of a score calculation
type ScoreDetails struct {
	CorrectPredictions int `json:"correct_predictions"`
	LowOddsBets        int `json:"low_odds_bets"`
	PenaltyRangeBets   int `json:"penalty_range_bets"`
	CappedBets         int `json:"capped_bets"`
}

// ScoreCalculation is the point breakdown for one slate
type ScoreCalculation struct {
	BasePoints    float64      `json:"base_points"`
	BonusPoints   float64      `json:"bonus_points"`
	PenaltyPoints float64      `json:"penalty_points"`
	FinalPoints   float64      `json:"final_points"`
	Details       ScoreDetails `json:"details"`
}
