package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/repository"
)

type prizeRepository struct {
	db *pgxpool.Pool
}

// NewPrizeRepository creates a new PostgreSQL prize repository
func NewPrizeRepository(db *pgxpool.Pool) repository.Prize {
	return &prizeRepository{db: db}
}

// GetPrizePool reads the single-row pool state
func (r *prizeRepository) GetPrizePool(ctx context.Context) (*domain.PrizePool, error) {
	query := `
		SELECT total_pool, weekly_pool, final_pool, accumulated_poker, accumulated_highest_odds
		FROM prize_pool
		WHERE id = TRUE
	`
	var pool domain.PrizePool
	err := r.db.QueryRow(ctx, query).Scan(
		&pool.TotalPool, &pool.WeeklyPool, &pool.FinalPool,
		&pool.AccumulatedPoker, &pool.AccumulatedHighestOdds)
	if err != nil {
		return nil, fmt.Errorf("failed to get prize pool: %w", err)
	}
	return &pool, nil
}

// GetLastSettledMatchday returns the highest matchday already settled
func (r *prizeRepository) GetLastSettledMatchday(ctx context.Context) (int, error) {
	var matchday int
	err := r.db.QueryRow(ctx, `SELECT settled_matchday FROM prize_pool WHERE id = TRUE`).Scan(&matchday)
	if err != nil {
		return 0, fmt.Errorf("failed to get settled matchday: %w", err)
	}
	return matchday, nil
}

// CountParticipants counts active participants
func (r *prizeRepository) CountParticipants(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// GetPayoutsByMatchday retrieves the payouts awarded for one round
func (r *prizeRepository) GetPayoutsByMatchday(ctx context.Context, matchday int) ([]domain.Payout, error) {
	query := `
		SELECT payout_id, prize_type, matchday, participant_id, amount, awarded_at
		FROM payouts
		WHERE matchday = $1
		ORDER BY prize_type, participant_id
	`
	return r.queryPayouts(ctx, query, matchday)
}

// GetPayoutsByParticipant retrieves a participant's full payout history
func (r *prizeRepository) GetPayoutsByParticipant(ctx context.Context, participantID string) ([]domain.Payout, error) {
	query := `
		SELECT payout_id, prize_type, matchday, participant_id, amount, awarded_at
		FROM payouts
		WHERE participant_id = $1
		ORDER BY matchday, prize_type
	`
	return r.queryPayouts(ctx, query, participantID)
}

func (r *prizeRepository) queryPayouts(ctx context.Context, query string, args ...interface{}) ([]domain.Payout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payouts: %w", err)
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var payout domain.Payout
		if err := rows.Scan(&payout.ID, &payout.Type, &payout.Matchday,
			&payout.ParticipantID, &payout.Amount, &payout.AwardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, payout)
	}
	return payouts, rows.Err()
}

// BeginSettlementTx starts a settlement transaction
func (r *prizeRepository) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &settlementTx{tx: tx}, nil
}

type settlementTx struct {
	tx pgx.Tx
}

// SavePrizePool writes the new pool state and advances the settlement
// guard. The settled_matchday predicate makes the advance conditional,
// so a concurrent settlement of the same round loses the race inside
// the database even without the process-wide lock.
func (t *settlementTx) SavePrizePool(ctx context.Context, pool *domain.PrizePool, settledMatchday int) error {
	query := `
		UPDATE prize_pool SET
			total_pool = $1,
			weekly_pool = $2,
			final_pool = $3,
			accumulated_poker = $4,
			accumulated_highest_odds = $5,
			settled_matchday = $6,
			updated_at = NOW()
		WHERE id = TRUE AND settled_matchday < $6
	`
	tag, err := t.tx.Exec(ctx, query,
		pool.TotalPool, pool.WeeklyPool, pool.FinalPool,
		pool.AccumulatedPoker, pool.AccumulatedHighestOdds, settledMatchday)
	if err != nil {
		return fmt.Errorf("failed to update prize pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: matchday %d", domain.ErrRoundAlreadySettled, settledMatchday)
	}
	return nil
}

// SavePayouts inserts the round's payouts
func (t *settlementTx) SavePayouts(ctx context.Context, payouts []domain.Payout) error {
	for _, payout := range payouts {
		_, err := t.tx.Exec(ctx, `
			INSERT INTO payouts (payout_id, prize_type, matchday, participant_id, amount, awarded_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, payout.ID, payout.Type, payout.Matchday, payout.ParticipantID, payout.Amount, payout.AwardedAt)
		if err != nil {
			return fmt.Errorf("failed to insert payout: %w", err)
		}
	}
	return nil
}

func (t *settlementTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *settlementTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
