package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionValidate(t *testing.T) {
	tests := []struct {
		name        string
		pred        Prediction
		expectedErr error
	}{
		{
			name: "valid esito",
			pred: Prediction{MatchID: "m1", BetType: BetTypeEsito, Outcome: "1", Odds: 2.10},
		},
		{
			name: "valid over under",
			pred: Prediction{MatchID: "m1", BetType: BetTypeOverUnder, Outcome: OutcomeOver, Odds: 1.85},
		},
		{
			name: "valid double chance",
			pred: Prediction{MatchID: "m1", BetType: BetTypeDoppiaChance, Outcome: "X2", Odds: 1.40},
		},
		{
			name: "valid multigoal",
			pred: Prediction{MatchID: "m1", BetType: BetTypeMultigoal, Outcome: "O1.5", Odds: 1.55},
		},
		{
			name:        "unknown market",
			pred:        Prediction{MatchID: "m1", BetType: "handicap", Outcome: "1", Odds: 2.00},
			expectedErr: ErrInvalidBetType,
		},
		{
			name:        "outcome from another market",
			pred:        Prediction{MatchID: "m1", BetType: BetTypeEsito, Outcome: OutcomeOver, Odds: 2.00},
			expectedErr: ErrInvalidOutcome,
		},
		{
			name:        "zero odds",
			pred:        Prediction{MatchID: "m1", BetType: BetTypeEsito, Outcome: "1", Odds: 0},
			expectedErr: ErrInvalidOutcome,
		},
		{
			name:        "negative odds",
			pred:        Prediction{MatchID: "m1", BetType: BetTypeEsito, Outcome: "1", Odds: -1.5},
			expectedErr: ErrInvalidOutcome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pred.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMultigoalLine(t *testing.T) {
	t.Run("over line", func(t *testing.T) {
		over, line, err := ParseMultigoalLine("O2.5")
		require.NoError(t, err)
		assert.True(t, over)
		assert.Equal(t, 2.5, line)
	})

	t.Run("under line", func(t *testing.T) {
		over, line, err := ParseMultigoalLine("U0.5")
		require.NoError(t, err)
		assert.False(t, over)
		assert.Equal(t, 0.5, line)
	})

	t.Run("bad direction", func(t *testing.T) {
		_, _, err := ParseMultigoalLine("X2.5")
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})

	t.Run("bad line", func(t *testing.T) {
		_, _, err := ParseMultigoalLine("Oabc")
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})

	t.Run("too short", func(t *testing.T) {
		_, _, err := ParseMultigoalLine("O")
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})
}

func TestMatchResultHelpers(t *testing.T) {
	assert.Equal(t, 3, MatchResult{HomeGoals: 2, AwayGoals: 1}.TotalGoals())
	assert.True(t, MatchResult{HomeGoals: 1, AwayGoals: 1}.BothScored())
	assert.False(t, MatchResult{HomeGoals: 2, AwayGoals: 0}.BothScored())
}

func TestSchedinaIsComplete(t *testing.T) {
	schedina := Schedina{Predictions: make([]Prediction, 10)}
	assert.True(t, schedina.IsComplete(10))
	assert.False(t, schedina.IsComplete(12))
	assert.False(t, Schedina{}.IsComplete(10))
}
