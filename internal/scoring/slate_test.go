package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fantaschedina/backend/internal/domain"
)

func predWithOdds(odds float64, correct bool) domain.PredictionResult {
	return domain.PredictionResult{
		Prediction: domain.Prediction{
			MatchID: "m1",
			BetType: domain.BetTypeEsito,
			Outcome: "1",
			Odds:    odds,
		},
		IsCorrect: correct,
	}
}

func TestCountPenaltyRangeBets(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	predictions := []domain.PredictionResult{
		predWithOdds(1.25, true),  // in band
		predWithOdds(1.28, false), // in band, correctness irrelevant
		predWithOdds(1.29, true),  // in band
		predWithOdds(1.30, true),  // out, upper bound exclusive
		predWithOdds(1.24, true),  // out, below band
		predWithOdds(2.50, false), // out
	}

	assert.Equal(t, 3, CountPenaltyRangeBets(predictions, cfg))
}

func TestCalculatePenaltyPoints(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	tests := []struct {
		name     string
		count    int
		expected float64
	}{
		{name: "no penalty bets", count: 0, expected: 0},
		{name: "below one group", count: 2, expected: 0},
		{name: "exactly one group", count: 3, expected: -1.5},
		{name: "one full group plus remainder", count: 5, expected: -1.5},
		{name: "two groups", count: 6, expected: -3.0},
		{name: "three groups", count: 9, expected: -4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculatePenaltyPoints(tt.count, cfg))
		})
	}
}

func TestCalculateBonusPoints(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	assert.Equal(t, 5.0, CalculateBonusPoints(10, cfg))
	assert.Equal(t, 2.0, CalculateBonusPoints(9, cfg))
	assert.Equal(t, 0.0, CalculateBonusPoints(8, cfg))
	assert.Equal(t, 0.0, CalculateBonusPoints(0, cfg))
	// No interpolation above the cliffs either
	assert.Equal(t, 0.0, CalculateBonusPoints(11, cfg))
}

func TestCalculateSchedinaScore(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	t.Run("base points sum correct picks only", func(t *testing.T) {
		predictions := []domain.PredictionResult{
			predWithOdds(2.00, true),
			predWithOdds(1.80, true),
			predWithOdds(3.00, false),
		}

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 3.8, score.BasePoints)
		assert.Equal(t, 0.0, score.BonusPoints)
		assert.Equal(t, 0.0, score.PenaltyPoints)
		assert.Equal(t, 3.8, score.FinalPoints)
		assert.Equal(t, 2, score.Details.CorrectPredictions)
	})

	t.Run("capped and low odds picks are counted", func(t *testing.T) {
		predictions := []domain.PredictionResult{
			predWithOdds(7.00, true), // capped at 3.5
			predWithOdds(1.10, true), // flat 0.5
			predWithOdds(1.10, false),
		}

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 4.0, score.BasePoints)
		assert.Equal(t, 1, score.Details.CappedBets)
		assert.Equal(t, 2, score.Details.LowOddsBets)
	})

	t.Run("full slate bonus", func(t *testing.T) {
		predictions := make([]domain.PredictionResult, 0, 10)
		for i := 0; i < 10; i++ {
			predictions = append(predictions, predWithOdds(2.00, true))
		}

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 20.0, score.BasePoints)
		assert.Equal(t, 5.0, score.BonusPoints)
		assert.Equal(t, 25.0, score.FinalPoints)
	})

	t.Run("nine of ten bonus", func(t *testing.T) {
		predictions := make([]domain.PredictionResult, 0, 10)
		for i := 0; i < 9; i++ {
			predictions = append(predictions, predWithOdds(2.00, true))
		}
		predictions = append(predictions, predWithOdds(2.00, false))

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 2.0, score.BonusPoints)
		assert.Equal(t, 20.0, score.FinalPoints)
	})

	t.Run("penalty applies regardless of correctness", func(t *testing.T) {
		predictions := []domain.PredictionResult{
			predWithOdds(1.25, false),
			predWithOdds(1.26, false),
			predWithOdds(1.28, false),
			predWithOdds(2.00, true),
		}

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 3, score.Details.PenaltyRangeBets)
		assert.Equal(t, -1.5, score.PenaltyPoints)
		assert.Equal(t, 0.5, score.FinalPoints)
	})

	t.Run("final points rounded to two decimals", func(t *testing.T) {
		predictions := []domain.PredictionResult{
			predWithOdds(1.333, true),
			predWithOdds(1.333, true),
			predWithOdds(1.333, true),
		}

		score := CalculateSchedinaScore(predictions, cfg)

		assert.Equal(t, 4.0, score.BasePoints)
		assert.Equal(t, 4.0, score.FinalPoints)
	})

	t.Run("empty slate scores zero", func(t *testing.T) {
		score := CalculateSchedinaScore(nil, cfg)

		assert.Equal(t, 0.0, score.FinalPoints)
		assert.Equal(t, 0, score.Details.CorrectPredictions)
	})
}
