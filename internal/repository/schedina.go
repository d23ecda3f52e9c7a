package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fantaschedina/backend/internal/domain"
)

// Schedina defines the data access required by the scoring service
type Schedina interface {
	CreateSchedina(ctx context.Context, schedina *domain.Schedina) error
	GetSchedina(ctx context.Context, id uuid.UUID) (*domain.Schedina, error)
	GetSchedineByMatchday(ctx context.Context, matchday int) ([]domain.Schedina, error)

	SaveSchedinaResult(ctx context.Context, result *domain.SchedinaResult) error
	GetSchedinaResult(ctx context.Context, id uuid.UUID) (*domain.SchedinaResult, error)
	GetResultsByMatchday(ctx context.Context, matchday int) ([]domain.SchedinaResult, error)
	GetAllResults(ctx context.Context) ([]domain.SchedinaResult, error)
}
