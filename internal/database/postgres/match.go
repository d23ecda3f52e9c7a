package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/repository"
)

type matchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new PostgreSQL match repository
func NewMatchRepository(db *pgxpool.Pool) repository.Match {
	return &matchRepository{db: db}
}

const matchSelect = `
	SELECT match_id, matchday, home_team, away_team, scheduled_at, status,
	       home_goals, away_goals, outcome
	FROM matches`

// GetMatch retrieves one fixture. Returns nil, nil when absent.
func (r *matchRepository) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	match, err := scanMatch(r.db.QueryRow(ctx, matchSelect+` WHERE match_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// GetMatchesByMatchday retrieves the fixtures of one round
func (r *matchRepository) GetMatchesByMatchday(ctx context.Context, matchday int) ([]domain.Match, error) {
	rows, err := r.db.Query(ctx, matchSelect+` WHERE matchday = $1 ORDER BY scheduled_at, match_id`, matchday)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var match domain.Match
	var homeTeamJSON, awayTeamJSON []byte
	var homeGoals, awayGoals *int
	var outcome *string

	err := row.Scan(&match.ID, &match.Matchday, &homeTeamJSON, &awayTeamJSON,
		&match.ScheduledAt, &match.Status, &homeGoals, &awayGoals, &outcome)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(homeTeamJSON, &match.HomeTeam); err != nil {
		return nil, fmt.Errorf("failed to unmarshal home team: %w", err)
	}
	if err := json.Unmarshal(awayTeamJSON, &match.AwayTeam); err != nil {
		return nil, fmt.Errorf("failed to unmarshal away team: %w", err)
	}

	// Result columns are nullable until the match finishes
	if homeGoals != nil && awayGoals != nil && outcome != nil {
		match.Result = &domain.MatchResult{
			HomeGoals: *homeGoals,
			AwayGoals: *awayGoals,
			Outcome:   domain.Outcome(*outcome),
		}
	}
	return &match, nil
}
