package prize

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fantaschedina/backend/internal/concurrency"
	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/metrics"
	"github.com/fantaschedina/backend/internal/repository"
)

// Service defines the interface for prize operations
type Service interface {
	LateEntryFee(ctx context.Context, currentMatchday int) (domain.LateEntryFee, error)
	PreviewDistribution(ctx context.Context) (domain.WeeklyDistribution, error)
	GetPrizePool(ctx context.Context) (*domain.PrizePool, error)
	PayoutHistory(ctx context.Context, matchday int) ([]domain.Payout, error)
	SettleRound(ctx context.Context, matchday int) (*domain.PrizePool, []domain.Payout, error)
}

type service struct {
	prizeRepo    repository.Prize
	schedinaRepo repository.Schedina
	cfg          *domain.TournamentConfig
	locks        *concurrency.LockManager
}

// NewService creates a new prize service
func NewService(prizeRepo repository.Prize, schedinaRepo repository.Schedina, cfg *domain.TournamentConfig) Service {
	return &service{
		prizeRepo:    prizeRepo,
		schedinaRepo: schedinaRepo,
		cfg:          cfg,
		locks:        concurrency.NewLockManager(),
	}
}

// LateEntryFee quotes the entry fee for joining at the given matchday
func (s *service) LateEntryFee(ctx context.Context, currentMatchday int) (domain.LateEntryFee, error) {
	return CalculateLateEntryFee(currentMatchday, s.cfg)
}

// PreviewDistribution shows how the current weekly pool would split
// across the active participants without settling anything
func (s *service) PreviewDistribution(ctx context.Context) (domain.WeeklyDistribution, error) {
	pool, err := s.prizeRepo.GetPrizePool(ctx)
	if err != nil {
		return domain.WeeklyDistribution{}, fmt.Errorf("%s: %w", ErrContextFailedToGetPool, err)
	}

	count, err := s.prizeRepo.CountParticipants(ctx)
	if err != nil {
		return domain.WeeklyDistribution{}, fmt.Errorf("%s: %w", ErrContextFailedToCountPlayers, err)
	}

	return CalculateWeeklyPrizeDistribution(pool.WeeklyPool, count, s.cfg)
}

// GetPrizePool returns the current pool state
func (s *service) GetPrizePool(ctx context.Context) (*domain.PrizePool, error) {
	pool, err := s.prizeRepo.GetPrizePool(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPool, err)
	}
	return pool, nil
}

// PayoutHistory returns the payouts awarded when the given round was
// settled. An unsettled round simply has none.
func (s *service) PayoutHistory(ctx context.Context, matchday int) ([]domain.Payout, error) {
	payouts, err := s.prizeRepo.GetPayoutsByMatchday(ctx, matchday)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPayouts, err)
	}
	return payouts, nil
}

// SettleRound runs the round-boundary settlement workflow: accrue the
// round's weekly fees, split the weekly pool, award or roll over the
// special prizes, and persist the new pool plus payouts atomically. A
// matchday can only be settled once, and only after it has been scored.
func (s *service) SettleRound(ctx context.Context, matchday int) (*domain.PrizePool, []domain.Payout, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSettleRoundCalled, "matchday", matchday)

	// The pool is a single shared state, so settlements are serialized
	// process-wide regardless of matchday
	lock := s.locks.GetLock(SettlementLockKey)
	lock.Lock()
	defer lock.Unlock()

	lastSettled, err := s.prizeRepo.GetLastSettledMatchday(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSettled, err)
	}
	if matchday <= lastSettled {
		return nil, nil, fmt.Errorf("%w: matchday %d settled up to %d", domain.ErrRoundAlreadySettled, matchday, lastSettled)
	}

	results, err := s.schedinaRepo.GetResultsByMatchday(ctx, matchday)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToGetResults, err)
	}
	if len(results) == 0 {
		return nil, nil, fmt.Errorf("%w: matchday %d", domain.ErrRoundNotScored, matchday)
	}

	pool, err := s.prizeRepo.GetPrizePool(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPool, err)
	}

	accrued := AccrueWeeklyFees(*pool, len(results), s.cfg)

	newPool, payouts, err := SettleRound(accrued, results, s.cfg)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	for i := range payouts {
		payouts[i].ID = uuid.New()
		payouts[i].AwardedAt = now
	}

	tx, err := s.prizeRepo.BeginSettlementTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SavePrizePool(ctx, &newPool, matchday); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToSavePool, err)
	}
	if err := tx.SavePayouts(ctx, payouts); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToSavePayouts, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	metrics.RoundsSettled.Inc()
	for _, payout := range payouts {
		metrics.PayoutsAwarded.WithLabelValues(string(payout.Type)).Add(payout.Amount)
	}
	metrics.PokerJackpot.Set(newPool.AccumulatedPoker)
	metrics.HighestOddsJackpot.Set(newPool.AccumulatedHighestOdds)

	if newPool.AccumulatedPoker > 0 {
		log.Info(LogMsgPokerJackpotGrows, "jackpot", newPool.AccumulatedPoker)
	}
	if newPool.AccumulatedHighestOdds > 0 {
		log.Info(LogMsgOddsJackpotGrows, "jackpot", newPool.AccumulatedHighestOdds)
	}

	log.Info(LogMsgRoundSettled, "matchday", matchday, "payouts", len(payouts), "final_pool", newPool.FinalPool)
	return &newPool, payouts, nil
}
