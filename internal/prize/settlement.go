package prize

import (
	"fmt"
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/utils"
)

// AccrueWeeklyFees adds the pool share of every participant's weekly fee
// to the pool. The organizer share never enters the pool.
func AccrueWeeklyFees(pool domain.PrizePool, participantCount int, cfg *domain.TournamentConfig) domain.PrizePool {
	pool.WeeklyPool = utils.Round2(pool.WeeklyPool + float64(participantCount)*cfg.WeeklyFeeToPool)
	return recomputeTotal(pool)
}

// AddEntryFee routes a (late) entry fee into the weekly pool
func AddEntryFee(pool domain.PrizePool, fee domain.LateEntryFee) domain.PrizePool {
	pool.WeeklyPool = utils.Round2(pool.WeeklyPool + fee.ToPool)
	return recomputeTotal(pool)
}

// SettleRound is the round-boundary state transition: given the pool
// state carried into the round and the round's scored slates, it
// produces the next pool state and the payouts owed. It is pure; the
// caller persists both outputs. Jackpot rollover is explicit: a special
// prize with no qualifying winner grows its accumulated jackpot, and a
// winner collects the fixed amount plus the whole jackpot, which then
// resets.
//
// Payouts are returned without IDs or timestamps; the caller stamps
// those before persisting.
func SettleRound(prev domain.PrizePool, results []domain.SchedinaResult, cfg *domain.TournamentConfig) (domain.PrizePool, []domain.Payout, error) {
	if len(results) == 0 {
		return prev, nil, fmt.Errorf("%w: cannot settle a round with no scored slates", domain.ErrNoParticipants)
	}

	matchday := results[0].Matchday

	dist, err := CalculateWeeklyPrizeDistribution(prev.WeeklyPool, len(results), cfg)
	if err != nil {
		return prev, nil, err
	}

	winner := WeeklyWinner(results)

	payouts := []domain.Payout{{
		Type:          domain.PrizeWeeklyWinner,
		Matchday:      matchday,
		ParticipantID: winner.ParticipantID,
		Amount:        dist.ToWinner,
	}}
	for _, result := range results {
		payouts = append(payouts, domain.Payout{
			Type:          domain.PrizeWeeklyShare,
			Matchday:      matchday,
			ParticipantID: result.ParticipantID,
			Amount:        dist.ToEach,
		})
	}

	next := prev
	next.WeeklyPool = 0
	next.FinalPool = utils.Round2(prev.FinalPool + dist.ToFinal)

	// Poker prize: among eligible slates the highest sum of qualifying
	// odds wins the whole amount, ties resolved by participant ID order.
	if pokerWinner, ok := bestPokerSlate(results, cfg); ok {
		amount := utils.Round2(cfg.PokerPrize + prev.AccumulatedPoker)
		payouts = append(payouts, domain.Payout{
			Type:          domain.PrizePoker,
			Matchday:      matchday,
			ParticipantID: pokerWinner,
			Amount:        amount,
		})
		next.AccumulatedPoker = 0
	} else {
		next.AccumulatedPoker = utils.Round2(prev.AccumulatedPoker + cfg.PokerPrize)
	}

	// Highest winning odds prize
	if highest := FindHighestWinningOdds(results, cfg); highest.WinnerID != "" {
		amount := utils.Round2(cfg.HighestOddsPrize + prev.AccumulatedHighestOdds)
		payouts = append(payouts, domain.Payout{
			Type:          domain.PrizeHighestOdds,
			Matchday:      matchday,
			ParticipantID: highest.WinnerID,
			Amount:        amount,
		})
		next.AccumulatedHighestOdds = 0
	} else {
		next.AccumulatedHighestOdds = utils.Round2(prev.AccumulatedHighestOdds + cfg.HighestOddsPrize)
	}

	return recomputeTotal(next), payouts, nil
}

// WeeklyWinner picks the round's best slate: highest final points, ties
// to the earliest submission and then to participant ID so the outcome
// is deterministic.
func WeeklyWinner(results []domain.SchedinaResult) domain.SchedinaResult {
	ordered := make([]domain.SchedinaResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].FinalPoints != ordered[j].FinalPoints {
			return ordered[i].FinalPoints > ordered[j].FinalPoints
		}
		if !ordered[i].SubmittedAt.Equal(ordered[j].SubmittedAt) {
			return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
		}
		return ordered[i].ParticipantID < ordered[j].ParticipantID
	})
	return ordered[0]
}

// bestPokerSlate selects the poker prize winner across the round's
// eligible slates
func bestPokerSlate(results []domain.SchedinaResult, cfg *domain.TournamentConfig) (string, bool) {
	ordered := make([]domain.SchedinaResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ParticipantID < ordered[j].ParticipantID
	})

	winnerID := ""
	var best domain.PokerCheck

	for _, result := range ordered {
		check := CheckPokerPrize(result.Predictions, cfg)
		if !check.Eligible {
			continue
		}
		if winnerID == "" || check.TotalOdds > best.TotalOdds {
			winnerID = result.ParticipantID
			best = check
		}
	}

	return winnerID, winnerID != ""
}

// recomputeTotal keeps TotalPool equal to the sum of every held amount
func recomputeTotal(pool domain.PrizePool) domain.PrizePool {
	pool.TotalPool = utils.Round2(pool.WeeklyPool + pool.FinalPool + pool.AccumulatedPoker + pool.AccumulatedHighestOdds)
	return pool
}
