package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/prize"
	"github.com/fantaschedina/backend/internal/repository"
)

// Service defines the interface for ranking queries
type Service interface {
	Standings(ctx context.Context) ([]domain.RankingEntry, error)
	WeeklyRanking(ctx context.Context, matchday int) (*domain.WeeklyRanking, error)
}

type service struct {
	schedinaRepo repository.Schedina
	cfg          *domain.TournamentConfig
}

// NewService creates a new ranking service
func NewService(schedinaRepo repository.Schedina, cfg *domain.TournamentConfig) Service {
	return &service{schedinaRepo: schedinaRepo, cfg: cfg}
}

// Standings returns the cumulative season standings
func (s *service) Standings(ctx context.Context) ([]domain.RankingEntry, error) {
	results, err := s.schedinaRepo.GetAllResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load season results: %w", err)
	}
	return ComputeStandings(results, s.cfg), nil
}

// WeeklyRanking returns one matchday's results ordered best-first,
// together with the round winner
func (s *service) WeeklyRanking(ctx context.Context, matchday int) (*domain.WeeklyRanking, error) {
	results, err := s.schedinaRepo.GetResultsByMatchday(ctx, matchday)
	if err != nil {
		return nil, fmt.Errorf("failed to load matchday results: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: matchday %d", domain.ErrRoundNotScored, matchday)
	}

	ordered := make([]domain.SchedinaResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].FinalPoints != ordered[j].FinalPoints {
			return ordered[i].FinalPoints > ordered[j].FinalPoints
		}
		return ordered[i].ParticipantID < ordered[j].ParticipantID
	})

	return &domain.WeeklyRanking{
		Matchday: matchday,
		Entries:  ordered,
		WinnerID: prize.WeeklyWinner(results).ParticipantID,
	}, nil
}
