package prize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantaschedina/backend/internal/domain"
)

func payoutOfType(payouts []domain.Payout, prizeType domain.PrizeType) (domain.Payout, bool) {
	for _, p := range payouts {
		if p.Type == prizeType {
			return p, true
		}
	}
	return domain.Payout{}, false
}

func TestAccrueWeeklyFees(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	pool := domain.PrizePool{WeeklyPool: 10}
	accrued := AccrueWeeklyFees(pool, 8, cfg)

	// 8 participants x 5 to the pool; the organizer share never enters
	assert.Equal(t, 50.0, accrued.WeeklyPool)
	assert.Equal(t, 50.0, accrued.TotalPool)
}

func TestAddEntryFee(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	fee, err := CalculateLateEntryFee(3, cfg)
	require.NoError(t, err)

	pool := AddEntryFee(domain.PrizePool{WeeklyPool: 20}, fee)

	assert.Equal(t, 50.0, pool.WeeklyPool)
	assert.Equal(t, 50.0, pool.TotalPool)
}

func TestSettleRound_WeeklySplit(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	base := time.Date(2025, 9, 14, 18, 0, 0, 0, time.UTC)
	results := []domain.SchedinaResult{
		{ParticipantID: "alice", Matchday: 4, FinalPoints: 18.2, SubmittedAt: base},
		{ParticipantID: "bob", Matchday: 4, FinalPoints: 21.7, SubmittedAt: base},
		{ParticipantID: "carol", Matchday: 4, FinalPoints: 15.0, SubmittedAt: base},
	}

	prev := domain.PrizePool{WeeklyPool: 150}

	next, payouts, err := SettleRound(prev, results, cfg)
	require.NoError(t, err)

	winner, ok := payoutOfType(payouts, domain.PrizeWeeklyWinner)
	require.True(t, ok)
	assert.Equal(t, "bob", winner.ParticipantID)
	assert.Equal(t, 60.0, winner.Amount)
	assert.Equal(t, 4, winner.Matchday)

	shares := 0
	for _, p := range payouts {
		if p.Type == domain.PrizeWeeklyShare {
			shares++
			assert.Equal(t, 20.0, p.Amount)
		}
	}
	assert.Equal(t, 3, shares)

	// The weekly pool empties into payouts and the seasonal pool
	assert.Equal(t, 0.0, next.WeeklyPool)
	assert.Equal(t, 30.0, next.FinalPool)
}

func TestSettleRound_JackpotRollover(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	// No pick qualifies for either special prize
	dullResults := []domain.SchedinaResult{
		scoredSlate("alice", gradedPick(1.50, true)),
	}
	dullResults[0].Matchday = 7

	prev := domain.PrizePool{WeeklyPool: 10}

	next, payouts, err := SettleRound(prev, dullResults, cfg)
	require.NoError(t, err)

	_, pokerPaid := payoutOfType(payouts, domain.PrizePoker)
	_, oddsPaid := payoutOfType(payouts, domain.PrizeHighestOdds)
	assert.False(t, pokerPaid)
	assert.False(t, oddsPaid)

	assert.Equal(t, 20.0, next.AccumulatedPoker)
	assert.Equal(t, 10.0, next.AccumulatedHighestOdds)

	// A second barren round grows the jackpots further
	again, _, err := SettleRound(next, dullResults, cfg)
	require.NoError(t, err)
	assert.Equal(t, 40.0, again.AccumulatedPoker)
	assert.Equal(t, 20.0, again.AccumulatedHighestOdds)
}

func TestSettleRound_JackpotPaidAndReset(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	results := []domain.SchedinaResult{
		scoredSlate("alice",
			gradedPick(2.10, true),
			gradedPick(2.20, true),
			gradedPick(2.30, true),
			gradedPick(2.40, true),
		),
	}
	results[0].Matchday = 9

	prev := domain.PrizePool{
		WeeklyPool:             50,
		AccumulatedPoker:       60,
		AccumulatedHighestOdds: 30,
	}

	next, payouts, err := SettleRound(prev, results, cfg)
	require.NoError(t, err)

	poker, ok := payoutOfType(payouts, domain.PrizePoker)
	require.True(t, ok)
	assert.Equal(t, "alice", poker.ParticipantID)
	assert.Equal(t, 80.0, poker.Amount) // 20 fixed + 60 jackpot

	odds, ok := payoutOfType(payouts, domain.PrizeHighestOdds)
	require.True(t, ok)
	assert.Equal(t, "alice", odds.ParticipantID)
	assert.Equal(t, 40.0, odds.Amount) // 10 fixed + 30 jackpot

	assert.Equal(t, 0.0, next.AccumulatedPoker)
	assert.Equal(t, 0.0, next.AccumulatedHighestOdds)
}

func TestSettleRound_PokerTieBreak(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	lowSum := scoredSlate("amy",
		gradedPick(2.10, true), gradedPick(2.10, true),
		gradedPick(2.10, true), gradedPick(2.10, true),
	)
	highSum := scoredSlate("zed",
		gradedPick(2.50, true), gradedPick(2.50, true),
		gradedPick(2.50, true), gradedPick(2.50, true),
	)

	_, payouts, err := SettleRound(domain.PrizePool{WeeklyPool: 10}, []domain.SchedinaResult{lowSum, highSum}, cfg)
	require.NoError(t, err)

	poker, ok := payoutOfType(payouts, domain.PrizePoker)
	require.True(t, ok)
	assert.Equal(t, "zed", poker.ParticipantID)
}

func TestSettleRound_PureFunction(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	results := []domain.SchedinaResult{
		scoredSlate("alice", gradedPick(1.50, true)),
	}
	prev := domain.PrizePool{WeeklyPool: 100, FinalPool: 40}

	first, firstPayouts, err := SettleRound(prev, results, cfg)
	require.NoError(t, err)
	second, secondPayouts, err := SettleRound(prev, results, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstPayouts, secondPayouts)
	// Input pool is untouched
	assert.Equal(t, 100.0, prev.WeeklyPool)
}

func TestSettleRound_NoResults(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	_, _, err := SettleRound(domain.PrizePool{WeeklyPool: 10}, nil, cfg)
	assert.ErrorIs(t, err, domain.ErrNoParticipants)
}

func TestSettleRound_TotalPoolInvariant(t *testing.T) {
	cfg := domain.DefaultTournamentConfig()

	results := []domain.SchedinaResult{
		scoredSlate("alice", gradedPick(1.50, true)),
		scoredSlate("bob", gradedPick(1.60, true)),
	}
	prev := domain.PrizePool{WeeklyPool: 80, FinalPool: 25, AccumulatedPoker: 20}

	next, _, err := SettleRound(prev, results, cfg)
	require.NoError(t, err)

	expected := next.WeeklyPool + next.FinalPool + next.AccumulatedPoker + next.AccumulatedHighestOdds
	assert.Equal(t, expected, next.TotalPool)
}

func TestWeeklyWinner(t *testing.T) {
	early := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	late := time.Date(2025, 9, 13, 10, 0, 0, 0, time.UTC)

	t.Run("highest points wins", func(t *testing.T) {
		winner := WeeklyWinner([]domain.SchedinaResult{
			{ParticipantID: "alice", FinalPoints: 10},
			{ParticipantID: "bob", FinalPoints: 12},
		})
		assert.Equal(t, "bob", winner.ParticipantID)
	})

	t.Run("points tie goes to earlier submission", func(t *testing.T) {
		winner := WeeklyWinner([]domain.SchedinaResult{
			{ParticipantID: "alice", FinalPoints: 10, SubmittedAt: late},
			{ParticipantID: "bob", FinalPoints: 10, SubmittedAt: early},
		})
		assert.Equal(t, "bob", winner.ParticipantID)
	})

	t.Run("full tie goes to participant ID order", func(t *testing.T) {
		winner := WeeklyWinner([]domain.SchedinaResult{
			{ParticipantID: "zed", FinalPoints: 10, SubmittedAt: early},
			{ParticipantID: "amy", FinalPoints: 10, SubmittedAt: early},
		})
		assert.Equal(t, "amy", winner.ParticipantID)
	})
}
