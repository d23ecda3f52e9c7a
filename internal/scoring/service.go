package scoring

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/metrics"
	"github.com/fantaschedina/backend/internal/repository"
)

// Service defines the interface for scoring operations
type Service interface {
	SubmitSchedina(ctx context.Context, participantID string, matchday int, predictions []domain.Prediction) (*domain.Schedina, error)
	GetSchedina(ctx context.Context, id uuid.UUID) (*domain.Schedina, error)
	GetSchedinaResult(ctx context.Context, id uuid.UUID) (*domain.SchedinaResult, error)
	GetMatch(ctx context.Context, matchID string) (*domain.Match, error)
	EvaluateRound(ctx context.Context, matchday int) ([]domain.SchedinaResult, error)
}

type service struct {
	schedinaRepo repository.Schedina
	matchRepo    repository.Match
	cfg          *domain.TournamentConfig
}

// NewService creates a new scoring service
func NewService(schedinaRepo repository.Schedina, matchRepo repository.Match, cfg *domain.TournamentConfig) Service {
	return &service{
		schedinaRepo: schedinaRepo,
		matchRepo:    matchRepo,
		cfg:          cfg,
	}
}

// SubmitSchedina validates a complete slate, locks it and persists it.
// A slate must carry exactly one valid prediction per match of the round.
func (s *service) SubmitSchedina(ctx context.Context, participantID string, matchday int, predictions []domain.Prediction) (*domain.Schedina, error) {
	log := logger.FromContext(ctx)

	if !(domain.Schedina{Predictions: predictions}).IsComplete(s.cfg.SlateSize) {
		return nil, fmt.Errorf("%w: got %d predictions, want %d",
			domain.ErrSchedinaIncomplete, len(predictions), s.cfg.SlateSize)
	}

	seen := make(map[string]struct{}, len(predictions))
	for _, pred := range predictions {
		if err := pred.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[pred.MatchID]; dup {
			return nil, fmt.Errorf("%w: duplicate prediction for match %s", domain.ErrInvalidInput, pred.MatchID)
		}
		seen[pred.MatchID] = struct{}{}
	}

	schedina := &domain.Schedina{
		ID:            uuid.New(),
		ParticipantID: participantID,
		Matchday:      matchday,
		Predictions:   predictions,
		SubmittedAt:   time.Now().UTC(),
		IsLocked:      true,
	}

	if err := s.schedinaRepo.CreateSchedina(ctx, schedina); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveSchedina, err)
	}

	metrics.SchedineSubmitted.Inc()
	log.Info(LogMsgSchedinaSubmitted,
		"schedinaID", schedina.ID,
		"participant", participantID,
		"matchday", matchday)

	return schedina, nil
}

// GetSchedina returns a submitted slate as it was locked
func (s *service) GetSchedina(ctx context.Context, id uuid.UUID) (*domain.Schedina, error) {
	schedina, err := s.schedinaRepo.GetSchedina(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSchedina, err)
	}
	if schedina == nil {
		return nil, domain.ErrSchedinaNotFound
	}
	return schedina, nil
}

// GetMatch returns one fixture of the externally supplied schedule
func (s *service) GetMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetMatches, err)
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, matchID)
	}
	return match, nil
}

// GetSchedinaResult returns the scored result of a slate
func (s *service) GetSchedinaResult(ctx context.Context, id uuid.UUID) (*domain.SchedinaResult, error) {
	result, err := s.schedinaRepo.GetSchedinaResult(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSchedina, err)
	}
	if result == nil {
		return nil, domain.ErrSchedinaNotFound
	}
	return result, nil
}

// EvaluateRound scores every locked schedina of a matchday against the
// round's matches and persists the results. Unlocked slates are skipped;
// unfinished matches grade their picks as incorrect, so a round may be
// re-evaluated as results arrive. Results are returned in participant
// order to keep downstream scans deterministic.
func (s *service) EvaluateRound(ctx context.Context, matchday int) ([]domain.SchedinaResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEvaluateRoundCalled, "matchday", matchday)

	schedine, err := s.schedinaRepo.GetSchedineByMatchday(ctx, matchday)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSchedine, err)
	}

	matches, err := s.matchRepo.GetMatchesByMatchday(ctx, matchday)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetMatches, err)
	}

	results := make([]domain.SchedinaResult, 0, len(schedine))
	for _, schedina := range schedine {
		if !schedina.IsLocked {
			log.Info(LogMsgSkippedUnlocked, "schedinaID", schedina.ID, "participant", schedina.ParticipantID)
			continue
		}

		result := EvaluateSchedina(schedina, matches, s.cfg)
		if err := s.schedinaRepo.SaveSchedinaResult(ctx, &result); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveResult, err)
		}

		metrics.SchedineScored.Inc()
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ParticipantID < results[j].ParticipantID
	})

	log.Info(LogMsgRoundEvaluated, "matchday", matchday, "scored", len(results))
	return results, nil
}
