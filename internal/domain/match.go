package domain

import "time"

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusPostponed MatchStatus = "postponed"
)

// Outcome is the 1/X/2 result of a match
type Outcome string

const (
	OutcomeHome Outcome = "1"
	OutcomeDraw Outcome = "X"
	OutcomeAway Outcome = "2"
)

// Team identifies one side of a match
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// MatchResult carries the final score of a finished match
type MatchResult struct {
	HomeGoals int     `json:"home_goals"`
	AwayGoals int     `json:"away_goals"`
	Outcome   Outcome `json:"outcome"`
}

// TotalGoals returns the combined goal count, used by over/under grading
func (r MatchResult) TotalGoals() int {
	return r.HomeGoals + r.AwayGoals
}

// BothScored reports whether both teams found the net (GG/NG grading)
func (r MatchResult) BothScored() bool {
	return r.HomeGoals > 0 && r.AwayGoals > 0
}

// Match represents a single fixture within a matchday
type Match struct {
	ID          string       `json:"id"`
	Matchday    int          `json:"matchday"`
	HomeTeam    Team         `json:"home_team"`
	AwayTeam    Team         `json:"away_team"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	Status      MatchStatus  `json:"status"`
	Result      *MatchResult `json:"result,omitempty"`
}

// IsFinished reports whether the match has a gradeable result
func (m Match) IsFinished() bool {
	return m.Status == MatchStatusFinished && m.Result != nil
}

// Matchday groups the fixtures of one round
type Matchday struct {
	Number   int       `json:"number"`
	Season   string    `json:"season"`
	Matches  []Match   `json:"matches"`
	Deadline time.Time `json:"deadline"`
}
