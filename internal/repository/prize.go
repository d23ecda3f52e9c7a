package repository

import (
	"context"

	"github.com/fantaschedina/backend/internal/domain"
)

// Prize defines the data access required by the prize service. Pool
// state and payouts are written together at settlement, so the interface
// exposes a settlement transaction.
type Prize interface {
	GetPrizePool(ctx context.Context) (*domain.PrizePool, error)
	GetLastSettledMatchday(ctx context.Context) (int, error)
	CountParticipants(ctx context.Context) (int, error)
	GetPayoutsByMatchday(ctx context.Context, matchday int) ([]domain.Payout, error)
	GetPayoutsByParticipant(ctx context.Context, participantID string) ([]domain.Payout, error)

	BeginSettlementTx(ctx context.Context) (SettlementTx, error)
}

// SettlementTx wraps the writes of one round settlement in a single
// atomic transaction
type SettlementTx interface {
	Tx

	SavePrizePool(ctx context.Context, pool *domain.PrizePool, settledMatchday int) error
	SavePayouts(ctx context.Context, payouts []domain.Payout) error
}
