package repository

import (
	"context"

	"github.com/fantaschedina/backend/internal/domain"
)

// Match defines read access to the externally supplied fixture data.
// This engine never writes matches; results arrive from the provider.
type Match interface {
	GetMatch(ctx context.Context, id string) (*domain.Match, error)
	GetMatchesByMatchday(ctx context.Context, matchday int) ([]domain.Match, error)
}
