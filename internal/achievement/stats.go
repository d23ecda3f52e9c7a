package achievement

import (
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/prize"
	"github.com/fantaschedina/backend/internal/ranking"
	"github.com/fantaschedina/backend/internal/utils"
)

// comebackFloor and comebackCeiling bound the "Re della Rimonta" badge:
// the participant must have ranked below the floor at some point and
// sit at or above the ceiling now.
const (
	comebackFloor   = 10
	comebackCeiling = 3
)

// ComputeUserStats rolls the whole season up into one participant's
// stats. results is every scored slate of the season; payouts is the
// participant's own payout history. A participant who never played gets
// zeroed stats with the season's participant count filled in.
func ComputeUserStats(participantID string, results []domain.SchedinaResult, payouts []domain.Payout, cfg *domain.TournamentConfig) domain.UserStats {
	stats := domain.UserStats{ParticipantID: participantID}

	byMatchday := make(map[int][]domain.SchedinaResult)
	var own []domain.SchedinaResult
	for _, result := range results {
		byMatchday[result.Matchday] = append(byMatchday[result.Matchday], result)
		if result.ParticipantID == participantID {
			own = append(own, result)
		}
	}

	for _, result := range own {
		stats.TotalSchedine++
		stats.TotalPredictions += len(result.Predictions)
		stats.CorrectPredictions += result.CorrectPredictions
		stats.TotalPoints += result.FinalPoints
		if result.CorrectPredictions == cfg.SlateSize {
			stats.PerfectSchedine++
		}
		for _, pred := range result.Predictions {
			if pred.IsCorrect && pred.Odds > stats.HighestOddsWon {
				stats.HighestOddsWon = pred.Odds
			}
		}
	}
	stats.TotalPoints = utils.Round2(stats.TotalPoints)

	matchdays := make([]int, 0, len(byMatchday))
	for matchday := range byMatchday {
		matchdays = append(matchdays, matchday)
	}
	sort.Ints(matchdays)

	for _, matchday := range matchdays {
		if prize.WeeklyWinner(byMatchday[matchday]).ParticipantID == participantID {
			stats.WeeklyWins++
		}
	}

	stats.CurrentStreak, stats.BestStreak = streaks(own, matchdays)

	for _, payout := range payouts {
		if payout.ParticipantID == participantID && payout.Type == domain.PrizePoker {
			stats.PokerCount++
		}
	}

	standings := ranking.ComputeStandings(results, cfg)
	stats.ParticipantCount = len(standings)
	for _, entry := range standings {
		if entry.ParticipantID == participantID {
			stats.Rank = entry.Rank
		}
	}

	stats.ComebackWins, stats.FirstPlaceFinishes = standingsHistory(participantID, results, matchdays, stats.Rank, cfg)

	return stats
}

// streaks returns the participant's current and best runs of
// consecutive matchday participation. The current streak is alive only
// if the participant played the latest scored matchday.
func streaks(own []domain.SchedinaResult, matchdays []int) (current, best int) {
	if len(own) == 0 || len(matchdays) == 0 {
		return 0, 0
	}

	played := make(map[int]bool, len(own))
	for _, result := range own {
		played[result.Matchday] = true
	}

	run := 0
	for _, matchday := range matchdays {
		if played[matchday] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if played[matchdays[len(matchdays)-1]] {
		current = run
	}
	return current, best
}

// standingsHistory replays the standings after each matchday to find
// the participant's worst position and the rounds spent in the lead
func standingsHistory(participantID string, results []domain.SchedinaResult, matchdays []int, finalRank int, cfg *domain.TournamentConfig) (comebacks, roundsLed int) {
	worstRank := 0
	for _, matchday := range matchdays {
		var prefix []domain.SchedinaResult
		for _, result := range results {
			if result.Matchday <= matchday {
				prefix = append(prefix, result)
			}
		}
		for _, entry := range ranking.ComputeStandings(prefix, cfg) {
			if entry.ParticipantID != participantID {
				continue
			}
			if entry.Rank > worstRank {
				worstRank = entry.Rank
			}
			if entry.Rank == 1 {
				roundsLed++
			}
		}
	}

	if worstRank > comebackFloor && finalRank > 0 && finalRank <= comebackCeiling {
		comebacks = 1
	}
	return comebacks, roundsLed
}
