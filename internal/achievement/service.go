package achievement

import (
	"context"
	"fmt"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/repository"
)

// Error context messages
const (
	ErrContextFailedToGetResults = "failed to load season results"
	ErrContextFailedToGetPayouts = "failed to load participant payouts"
)

// LogMsgReportBuilt marks a completed achievement evaluation
const LogMsgReportBuilt = "Achievement report built"

// Service defines the interface for achievement queries
type Service interface {
	Report(ctx context.Context, participantID string) (*domain.AchievementReport, error)
}

type service struct {
	schedinaRepo repository.Schedina
	prizeRepo    repository.Prize
	cfg          *domain.TournamentConfig
}

// NewService creates a new achievement service
func NewService(schedinaRepo repository.Schedina, prizeRepo repository.Prize, cfg *domain.TournamentConfig) Service {
	return &service{
		schedinaRepo: schedinaRepo,
		prizeRepo:    prizeRepo,
		cfg:          cfg,
	}
}

// Report rolls the season up into the participant's stats and evaluates
// the badge catalog against them. A participant with no scored slates
// gets a fully locked report.
func (s *service) Report(ctx context.Context, participantID string) (*domain.AchievementReport, error) {
	results, err := s.schedinaRepo.GetAllResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetResults, err)
	}

	payouts, err := s.prizeRepo.GetPayoutsByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPayouts, err)
	}

	stats := ComputeUserStats(participantID, results, payouts, s.cfg)
	report := BuildReport(stats)

	logger.FromContext(ctx).Debug(LogMsgReportBuilt,
		"participant", participantID,
		"unlocked", report.Summary.UnlockedCount,
		"total", report.Summary.TotalCount)

	return report, nil
}
