package scoring

import (
	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/utils"
)

// PenaltyGroupSize is the number of penalty-band picks that triggers one
// penalty unit. The penalty is a step function: 0-2 such picks cost
// nothing, 3-5 cost one unit, 6-8 two, and so on.
const PenaltyGroupSize = 3

// CountPenaltyRangeBets counts the picks whose odds fall in the penalty
// band. Correctness is irrelevant: the penalty is for taking such odds,
// not for winning with them.
func CountPenaltyRangeBets(predictions []domain.PredictionResult, cfg *domain.TournamentConfig) int {
	count := 0
	for _, p := range predictions {
		if IsInPenaltyRange(p.Odds, cfg) {
			count++
		}
	}
	return count
}

// CalculatePenaltyPoints converts a penalty-band count into penalty
// points: one PenaltyPerThree unit per full group of three.
func CalculatePenaltyPoints(penaltyRangeBets int, cfg *domain.TournamentConfig) float64 {
	penaltySets := penaltyRangeBets / PenaltyGroupSize
	return float64(penaltySets) * cfg.PenaltyPerThree
}

// CalculateBonusPoints returns the cliff bonus for a correct-pick count:
// a full slate earns Bonus10Correct, one short earns Bonus9Correct,
// anything else earns nothing. The cliffs are exact, never interpolated.
func CalculateBonusPoints(correctCount int, cfg *domain.TournamentConfig) float64 {
	switch correctCount {
	case cfg.SlateSize:
		return cfg.Bonus10Correct
	case cfg.SlateSize - 1:
		return cfg.Bonus9Correct
	default:
		return 0
	}
}

// CalculateSchedinaScore aggregates graded predictions into the slate's
// point breakdown. Rounding to 2 decimals happens only here, at the
// final aggregation step.
func CalculateSchedinaScore(predictions []domain.PredictionResult, cfg *domain.TournamentConfig) domain.ScoreCalculation {
	correctCount := 0
	basePoints := 0.0
	lowOddsBets := 0
	cappedBets := 0

	for _, p := range predictions {
		if p.IsCorrect {
			correctCount++
		}
		basePoints += CalculateBetPoints(p.Odds, p.IsCorrect, cfg)
		if p.Odds < cfg.LowOddsThreshold {
			lowOddsBets++
		}
		if p.Odds > cfg.MaxPointsPerBet {
			cappedBets++
		}
	}

	penaltyRangeBets := CountPenaltyRangeBets(predictions, cfg)
	bonusPoints := CalculateBonusPoints(correctCount, cfg)
	penaltyPoints := CalculatePenaltyPoints(penaltyRangeBets, cfg)
	finalPoints := basePoints + bonusPoints + penaltyPoints

	return domain.ScoreCalculation{
		BasePoints:    utils.Round2(basePoints),
		BonusPoints:   bonusPoints,
		PenaltyPoints: penaltyPoints,
		FinalPoints:   utils.Round2(finalPoints),
		Details: domain.ScoreDetails{
			CorrectPredictions: correctCount,
			LowOddsBets:        lowOddsBets,
			PenaltyRangeBets:   penaltyRangeBets,
			CappedBets:         cappedBets,
		},
	}
}
