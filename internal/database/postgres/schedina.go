package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/repository"
)

type schedinaRepository struct {
	db *pgxpool.Pool
}

// NewSchedinaRepository creates a new PostgreSQL schedina repository
func NewSchedinaRepository(db *pgxpool.Pool) repository.Schedina {
	return &schedinaRepository{db: db}
}

// CreateSchedina inserts a locked slate
func (r *schedinaRepository) CreateSchedina(ctx context.Context, schedina *domain.Schedina) error {
	predictionsJSON, err := json.Marshal(schedina.Predictions)
	if err != nil {
		return fmt.Errorf("failed to marshal predictions: %w", err)
	}

	query := `
		INSERT INTO schedine (schedina_id, participant_id, matchday, predictions, submitted_at, is_locked)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query,
		schedina.ID, schedina.ParticipantID, schedina.Matchday,
		predictionsJSON, schedina.SubmittedAt, schedina.IsLocked)
	if err != nil {
		return fmt.Errorf("failed to insert schedina: %w", err)
	}
	return nil
}

// GetSchedina retrieves a slate by ID. Returns nil, nil when absent.
func (r *schedinaRepository) GetSchedina(ctx context.Context, id uuid.UUID) (*domain.Schedina, error) {
	query := `
		SELECT schedina_id, participant_id, matchday, predictions, submitted_at, is_locked
		FROM schedine
		WHERE schedina_id = $1
	`
	schedina, err := scanSchedina(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedina: %w", err)
	}
	return schedina, nil
}

// GetSchedineByMatchday retrieves every slate of a round
func (r *schedinaRepository) GetSchedineByMatchday(ctx context.Context, matchday int) ([]domain.Schedina, error) {
	query := `
		SELECT schedina_id, participant_id, matchday, predictions, submitted_at, is_locked
		FROM schedine
		WHERE matchday = $1
		ORDER BY participant_id
	`
	rows, err := r.db.Query(ctx, query, matchday)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedine: %w", err)
	}
	defer rows.Close()

	var schedine []domain.Schedina
	for rows.Next() {
		schedina, err := scanSchedina(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedina: %w", err)
		}
		schedine = append(schedine, *schedina)
	}
	return schedine, rows.Err()
}

// SaveSchedinaResult upserts a scored slate; re-scoring a round simply
// overwrites the previous projection
func (r *schedinaRepository) SaveSchedinaResult(ctx context.Context, result *domain.SchedinaResult) error {
	predictionsJSON, err := json.Marshal(result.Predictions)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction results: %w", err)
	}

	query := `
		INSERT INTO schedina_results
			(schedina_id, participant_id, matchday, predictions, submitted_at,
			 total_points, correct_predictions, bonus_points, penalty_points, final_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (schedina_id) DO UPDATE SET
			predictions = EXCLUDED.predictions,
			total_points = EXCLUDED.total_points,
			correct_predictions = EXCLUDED.correct_predictions,
			bonus_points = EXCLUDED.bonus_points,
			penalty_points = EXCLUDED.penalty_points,
			final_points = EXCLUDED.final_points,
			scored_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		result.ID, result.ParticipantID, result.Matchday, predictionsJSON, result.SubmittedAt,
		result.TotalPoints, result.CorrectPredictions, result.BonusPoints, result.PenaltyPoints, result.FinalPoints)
	if err != nil {
		return fmt.Errorf("failed to save schedina result: %w", err)
	}
	return nil
}

// GetSchedinaResult retrieves one scored slate. Returns nil, nil when absent.
func (r *schedinaRepository) GetSchedinaResult(ctx context.Context, id uuid.UUID) (*domain.SchedinaResult, error) {
	query := resultSelect + ` WHERE schedina_id = $1`
	result, err := scanSchedinaResult(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedina result: %w", err)
	}
	return result, nil
}

// GetResultsByMatchday retrieves the scored slates of one round in
// participant order
func (r *schedinaRepository) GetResultsByMatchday(ctx context.Context, matchday int) ([]domain.SchedinaResult, error) {
	query := resultSelect + ` WHERE matchday = $1 ORDER BY participant_id`
	return r.queryResults(ctx, query, matchday)
}

// GetAllResults retrieves every scored slate of the season
func (r *schedinaRepository) GetAllResults(ctx context.Context) ([]domain.SchedinaResult, error) {
	query := resultSelect + ` ORDER BY matchday, participant_id`
	return r.queryResults(ctx, query)
}

const resultSelect = `
	SELECT schedina_id, participant_id, matchday, predictions, submitted_at,
	       total_points, correct_predictions, bonus_points, penalty_points, final_points
	FROM schedina_results`

func (r *schedinaRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]domain.SchedinaResult, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedina results: %w", err)
	}
	defer rows.Close()

	var results []domain.SchedinaResult
	for rows.Next() {
		result, err := scanSchedinaResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedina result: %w", err)
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func scanSchedina(row pgx.Row) (*domain.Schedina, error) {
	var schedina domain.Schedina
	var predictionsJSON []byte

	err := row.Scan(&schedina.ID, &schedina.ParticipantID, &schedina.Matchday,
		&predictionsJSON, &schedina.SubmittedAt, &schedina.IsLocked)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(predictionsJSON, &schedina.Predictions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal predictions: %w", err)
	}
	return &schedina, nil
}

func scanSchedinaResult(row pgx.Row) (*domain.SchedinaResult, error) {
	var result domain.SchedinaResult
	var predictionsJSON []byte

	err := row.Scan(&result.ID, &result.ParticipantID, &result.Matchday,
		&predictionsJSON, &result.SubmittedAt,
		&result.TotalPoints, &result.CorrectPredictions,
		&result.BonusPoints, &result.PenaltyPoints, &result.FinalPoints)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(predictionsJSON, &result.Predictions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction results: %w", err)
	}
	result.IsLocked = true
	return &result, nil
}
