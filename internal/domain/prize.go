package domain

import (
	"time"

	"github.com/google/uuid"
)

// PrizeType identifies which prize a payout belongs to
type PrizeType string

const (
	PrizeWeeklyWinner PrizeType = "weekly_winner"
	PrizeWeeklyShare  PrizeType = "weekly_share"
	PrizeHighestOdds  PrizeType = "highest_odds"
	PrizePoker        PrizeType = "poker"
)

// PrizePool is the aggregate monetary state of the tournament. It is
// mutated only through settlement: callers thread the previous value in
// and persist the returned one.
type PrizePool struct {
	TotalPool              float64 `json:"total_pool"`
	WeeklyPool             float64 `json:"weekly_pool"`
	FinalPool              float64 `json:"final_pool"`
	AccumulatedPoker       float64 `json:"accumulated_poker"`
	AccumulatedHighestOdds float64 `json:"accumulated_highest_odds"`
}

// Payout is a single award produced by round settlement
type Payout struct {
	ID            uuid.UUID `json:"id"`
	Type          PrizeType `json:"type"`
	Matchday      int       `json:"matchday"`
	ParticipantID string    `json:"participant_id"`
	Amount        float64   `json:"amount"`
	AwardedAt     time.Time `json:"awarded_at"`
}

// LateEntryFee is the fee breakdown for a participant joining mid-season
type LateEntryFee struct {
	TotalFee      float64 `json:"total_fee"`
	BaseFee       float64 `json:"base_fee"`
	AdditionalFee float64 `json:"additional_fee"`
	ToPool        float64 `json:"to_pool"`
}

// WeeklyDistribution is the three-way split of one weekly pool
type WeeklyDistribution struct {
	ToWinner float64 `json:"to_winner"`
	ToEach   float64 `json:"to_each"`
	ToFinal  float64 `json:"to_final"`
}

// PokerCheck is the per-slate eligibility result for the poker prize
type PokerCheck struct {
	Eligible       bool               `json:"eligible"`
	QualifyingBets []PredictionResult `json:"qualifying_bets"`
	TotalOdds      float64            `json:"total_odds"`
}

// HighestOddsResult identifies the round's highest winning odds, if any.
// An empty WinnerID means no prediction cleared the prize threshold.
type HighestOddsResult struct {
	WinnerID    string            `json:"winner_id,omitempty"`
	HighestOdds float64           `json:"highest_odds"`
	Prediction  *PredictionResult `json:"prediction,omitempty"`
}
