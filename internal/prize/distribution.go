package prize

import (
	"fmt"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/utils"
)

// CalculateWeeklyPrizeDistribution splits one weekly pool three ways:
// a winner bonus, a per-capita share divided among all participants
// (winner included), and a transfer to the seasonal pool. Each output is
// rounded to 2 decimals independently. A non-positive participant count
// is a degenerate input and fails explicitly rather than dividing by
// zero.
func CalculateWeeklyPrizeDistribution(weeklyPool float64, participantCount int, cfg *domain.TournamentConfig) (domain.WeeklyDistribution, error) {
	if participantCount <= 0 {
		return domain.WeeklyDistribution{}, fmt.Errorf("%w: participant count %d",
			domain.ErrNoParticipants, participantCount)
	}

	toWinner := weeklyPool * cfg.WeeklyWinnerShare
	toEach := (weeklyPool * cfg.WeeklyAllShare) / float64(participantCount)
	toFinal := weeklyPool * cfg.WeeklyToFinalShare

	return domain.WeeklyDistribution{
		ToWinner: utils.Round2(toWinner),
		ToEach:   utils.Round2(toEach),
		ToFinal:  utils.Round2(toFinal),
	}, nil
}
