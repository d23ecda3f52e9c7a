package ranking

import (
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/prize"
	"github.com/fantaschedina/backend/internal/utils"
)

// ComputeStandings rolls every scored slate of the season up into the
// cumulative standings. Ordering: total points descending, ties broken
// by correct predictions and then participant ID. Ranks follow the
// final ordering position, starting at 1.
func ComputeStandings(results []domain.SchedinaResult, cfg *domain.TournamentConfig) []domain.RankingEntry {
	byParticipant := make(map[string]*domain.RankingEntry)
	byMatchday := make(map[int][]domain.SchedinaResult)

	for _, result := range results {
		entry, ok := byParticipant[result.ParticipantID]
		if !ok {
			entry = &domain.RankingEntry{ParticipantID: result.ParticipantID}
			byParticipant[result.ParticipantID] = entry
		}

		entry.TotalPoints += result.FinalPoints
		entry.MatchdaysPlayed++
		entry.CorrectPredictions += result.CorrectPredictions
		entry.BonusPointsTotal += result.BonusPoints
		entry.PenaltyPointsTotal += result.PenaltyPoints
		if result.FinalPoints > entry.BestMatchdayPoints {
			entry.BestMatchdayPoints = result.FinalPoints
		}
		if result.CorrectPredictions == cfg.SlateSize {
			entry.PerfectSchedine++
		}

		byMatchday[result.Matchday] = append(byMatchday[result.Matchday], result)
	}

	for _, round := range byMatchday {
		winner := prize.WeeklyWinner(round)
		if entry, ok := byParticipant[winner.ParticipantID]; ok {
			entry.WeeklyWins++
		}
	}

	entries := make([]domain.RankingEntry, 0, len(byParticipant))
	for _, entry := range byParticipant {
		entry.TotalPoints = utils.Round2(entry.TotalPoints)
		if entry.MatchdaysPlayed > 0 {
			entry.AveragePointsPerMatchday = utils.Round2(entry.TotalPoints / float64(entry.MatchdaysPlayed))
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		if entries[i].CorrectPredictions != entries[j].CorrectPredictions {
			return entries[i].CorrectPredictions > entries[j].CorrectPredictions
		}
		return entries[i].ParticipantID < entries[j].ParticipantID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
