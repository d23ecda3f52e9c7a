package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTournamentConfigIsValid(t *testing.T) {
	cfg := DefaultTournamentConfig()
	assert.NoError(t, cfg.Validate())
}

func TestTournamentConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TournamentConfig)
	}{
		{
			name:   "missing season",
			mutate: func(c *TournamentConfig) { c.Season = "" },
		},
		{
			name:   "zero slate size",
			mutate: func(c *TournamentConfig) { c.SlateSize = 0 },
		},
		{
			name:   "negative participation fee",
			mutate: func(c *TournamentConfig) { c.ParticipationFee = -5 },
		},
		{
			name:   "positive penalty",
			mutate: func(c *TournamentConfig) { c.PenaltyPerThree = 1.5 },
		},
		{
			name: "shares do not sum to one",
			mutate: func(c *TournamentConfig) {
				c.WeeklyWinnerShare = 0.5
				c.WeeklyAllShare = 0.4
				c.WeeklyToFinalShare = 0.2
			},
		},
		{
			name:   "empty penalty band",
			mutate: func(c *TournamentConfig) { c.PenaltyOddsMin = 1.35 },
		},
		{
			name:   "low odds threshold beyond min valid odds",
			mutate: func(c *TournamentConfig) { c.LowOddsThreshold = 1.40 },
		},
		{
			name: "weekly fee split does not add up",
			mutate: func(c *TournamentConfig) {
				c.WeeklyFeeToPool = 6
				c.WeeklyFeeToOrganizer = 5
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTournamentConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidTournamentConfig)
		})
	}
}

func TestLoadTournamentConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadTournamentConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTournamentConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tournament.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"season":"2026-2027","poker_prize":25}`), 0o600))

		cfg, err := LoadTournamentConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "2026-2027", cfg.Season)
		assert.Equal(t, 25.0, cfg.PokerPrize)
		// Untouched fields keep their defaults
		assert.Equal(t, 3.5, cfg.MaxPointsPerBet)
	})

	t.Run("invalid file fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tournament.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"slate_size":0}`), 0o600))

		_, err := LoadTournamentConfig(path)

		assert.ErrorIs(t, err, ErrInvalidTournamentConfig)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadTournamentConfig("/nonexistent/tournament.json")
		assert.Error(t, err)
	})
}
