package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
)

// shareSumTolerance bounds the floating point drift allowed when checking
// that the three weekly shares sum to 1.0.
const shareSumTolerance = 1e-9

// TournamentConfig holds every tunable rule of the tournament. It is
// supplied once per computation and never mutated by the engine.
type TournamentConfig struct {
	Season string `json:"season" validate:"required"`

	SlateSize int `json:"slate_size" validate:"required,min=1"`

	// Fees
	ParticipationFee     float64 `json:"participation_fee" validate:"gt=0"`
	WeeklyFee            float64 `json:"weekly_fee" validate:"gt=0"`
	WeeklyFeeToPool      float64 `json:"weekly_fee_to_pool" validate:"gte=0"`
	WeeklyFeeToOrganizer float64 `json:"weekly_fee_to_organizer" validate:"gte=0"`

	// Odds thresholds
	MinValidOdds     float64 `json:"min_valid_odds" validate:"gt=1"`
	MaxPointsPerBet  float64 `json:"max_points_per_bet" validate:"gt=0"`
	LowOddsThreshold float64 `json:"low_odds_threshold" validate:"gt=1"`
	LowOddsMaxPoints float64 `json:"low_odds_max_points" validate:"gte=0"`

	// Penalty band [PenaltyOddsMin, MinValidOdds)
	PenaltyOddsMin  float64 `json:"penalty_odds_min" validate:"gt=1"`
	PenaltyPerThree float64 `json:"penalty_per_three" validate:"lte=0"`

	// Bonus cliffs
	Bonus9Correct  float64 `json:"bonus_9_correct" validate:"gte=0"`
	Bonus10Correct float64 `json:"bonus_10_correct" validate:"gte=0"`

	// Late joining
	MaxJoinMatchday        int     `json:"max_join_matchday" validate:"min=1"`
	LateJoinFeePerMatchday float64 `json:"late_join_fee_per_matchday" validate:"gte=0"`

	// Seasonal prizes
	MinParticipantsForGuarantee int     `json:"min_participants_for_guarantee" validate:"min=0"`
	GuaranteedPrize             float64 `json:"guaranteed_prize" validate:"gte=0"`
	FirstPlacePrize             float64 `json:"first_place_prize" validate:"gte=0"`
	FirstHalfPrize              float64 `json:"first_half_prize" validate:"gte=0"`

	// Special prizes
	HighestOddsPrize           float64 `json:"highest_odds_prize" validate:"gte=0"`
	PokerPrize                 float64 `json:"poker_prize" validate:"gte=0"`
	MinOddsForPoker            float64 `json:"min_odds_for_poker" validate:"gt=1"`
	MinOddsForHighestOddsPrize float64 `json:"min_odds_for_highest_odds_prize" validate:"gt=1"`

	// Weekly pool split, must sum to 1.0
	WeeklyWinnerShare  float64 `json:"weekly_winner_share" validate:"gte=0,lte=1"`
	WeeklyAllShare     float64 `json:"weekly_all_share" validate:"gte=0,lte=1"`
	WeeklyToFinalShare float64 `json:"weekly_to_final_share" validate:"gte=0,lte=1"`

	// LegacyOutcomeGrading grades every market by comparing the raw 1/X/2
	// match outcome to the picked outcome, reproducing the historical
	// behavior. When false each market uses its own correctness predicate.
	LegacyOutcomeGrading bool `json:"legacy_outcome_grading"`
}

// DefaultTournamentConfig returns the 2025-2026 regulation values
func DefaultTournamentConfig() *TournamentConfig {
	return &TournamentConfig{
		Season:                      "2025-2026",
		SlateSize:                   10,
		ParticipationFee:            20,
		WeeklyFee:                   10,
		WeeklyFeeToPool:             5,
		WeeklyFeeToOrganizer:        5,
		MinValidOdds:                1.30,
		MaxPointsPerBet:             3.5,
		LowOddsThreshold:            1.25,
		LowOddsMaxPoints:            0.5,
		PenaltyOddsMin:              1.25,
		PenaltyPerThree:             -1.5,
		Bonus9Correct:               2,
		Bonus10Correct:              5,
		MaxJoinMatchday:             10,
		LateJoinFeePerMatchday:      5,
		MinParticipantsForGuarantee: 30,
		GuaranteedPrize:             500,
		FirstPlacePrize:             300,
		FirstHalfPrize:              200,
		HighestOddsPrize:            10,
		PokerPrize:                  20,
		MinOddsForPoker:             2.00,
		MinOddsForHighestOddsPrize:  2.00,
		WeeklyWinnerShare:           0.40,
		WeeklyAllShare:              0.40,
		WeeklyToFinalShare:          0.20,
	}
}

// Validate checks field constraints and the cross-field invariants that
// tags cannot express. Violations are configuration errors, never clamped.
func (c *TournamentConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTournamentConfig, err)
	}

	shareSum := c.WeeklyWinnerShare + c.WeeklyAllShare + c.WeeklyToFinalShare
	if math.Abs(shareSum-1.0) > shareSumTolerance {
		return fmt.Errorf("%w: weekly shares sum to %v, want 1.0", ErrInvalidTournamentConfig, shareSum)
	}

	if c.PenaltyOddsMin >= c.MinValidOdds {
		return fmt.Errorf("%w: penalty band [%v, %v) is empty", ErrInvalidTournamentConfig, c.PenaltyOddsMin, c.MinValidOdds)
	}

	if c.LowOddsThreshold > c.MinValidOdds {
		return fmt.Errorf("%w: low-odds threshold %v exceeds min valid odds %v", ErrInvalidTournamentConfig, c.LowOddsThreshold, c.MinValidOdds)
	}

	if c.WeeklyFeeToPool+c.WeeklyFeeToOrganizer != c.WeeklyFee {
		return fmt.Errorf("%w: weekly fee split %v+%v does not equal fee %v",
			ErrInvalidTournamentConfig, c.WeeklyFeeToPool, c.WeeklyFeeToOrganizer, c.WeeklyFee)
	}

	return nil
}

// LoadTournamentConfig reads a tournament config from a JSON file and
// validates it. Missing path returns the defaults.
func LoadTournamentConfig(path string) (*TournamentConfig, error) {
	if path == "" {
		return DefaultTournamentConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tournament config: %w", err)
	}

	cfg := DefaultTournamentConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tournament config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
