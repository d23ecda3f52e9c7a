package scoring

import "github.com/fantaschedina/backend/internal/domain"

// CalculateBetPoints returns the points earned by a single pick.
// Incorrect picks earn nothing. Correct picks below the low-odds
// threshold earn the flat minimal rate regardless of the actual odds;
// everything else earns the odds value capped at MaxPointsPerBet.
func CalculateBetPoints(odds float64, isCorrect bool, cfg *domain.TournamentConfig) float64 {
	if !isCorrect {
		return 0
	}

	if odds < cfg.LowOddsThreshold {
		return cfg.LowOddsMaxPoints
	}

	if odds > cfg.MaxPointsPerBet {
		return cfg.MaxPointsPerBet
	}
	return odds
}

// IsValidOdds reports whether the odds clear the minimum playable value.
// Validity is informational: scoring proceeds regardless, and "invalid"
// is distinct from "low-value" (odds in the penalty band are invalid but
// still score at face value).
func IsValidOdds(odds float64, cfg *domain.TournamentConfig) bool {
	return odds >= cfg.MinValidOdds
}

// IsInPenaltyRange reports whether the odds fall in the half-open band
// [PenaltyOddsMin, MinValidOdds).
func IsInPenaltyRange(odds float64, cfg *domain.TournamentConfig) bool {
	return odds >= cfg.PenaltyOddsMin && odds < cfg.MinValidOdds
}
