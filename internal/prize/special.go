package prize

import (
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/utils"
)

// CheckPokerPrize reports whether a slate qualifies for the poker prize:
// at least four correct picks whose odds are strictly greater than the
// threshold. A correct pick at exactly 2.00 does not count. TotalOdds is
// the tie-break key when several participants qualify in the same round.
func CheckPokerPrize(predictions []domain.PredictionResult, cfg *domain.TournamentConfig) domain.PokerCheck {
	var qualifying []domain.PredictionResult
	totalOdds := 0.0

	for _, p := range predictions {
		if p.IsCorrect && p.Odds > cfg.MinOddsForPoker {
			qualifying = append(qualifying, p)
			totalOdds += p.Odds
		}
	}

	return domain.PokerCheck{
		Eligible:       len(qualifying) >= PokerQualifyingBets,
		QualifyingBets: qualifying,
		TotalOdds:      utils.Round2(totalOdds),
	}
}

// FindHighestWinningOdds scans every correct pick across the round's
// scored slates and returns the single highest odds seen. Ties go to the
// first participant reached: the scan keeps the earlier maximum on equal
// odds, and the input is stable-sorted by participant ID first so the
// result is deterministic regardless of how the caller gathered it.
// Below the prize threshold no winner is returned; the caller rolls the
// prize amount into the jackpot.
func FindHighestWinningOdds(results []domain.SchedinaResult, cfg *domain.TournamentConfig) domain.HighestOddsResult {
	ordered := make([]domain.SchedinaResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ParticipantID < ordered[j].ParticipantID
	})

	highestOdds := 0.0
	winnerID := ""
	var winning *domain.PredictionResult

	for _, result := range ordered {
		for _, pred := range result.Predictions {
			if pred.IsCorrect && pred.Odds > highestOdds {
				highestOdds = pred.Odds
				winnerID = result.ParticipantID
				p := pred
				winning = &p
			}
		}
	}

	if highestOdds < cfg.MinOddsForHighestOddsPrize {
		return domain.HighestOddsResult{}
	}

	return domain.HighestOddsResult{
		WinnerID:    winnerID,
		HighestOdds: highestOdds,
		Prediction:  winning,
	}
}
