package domain

// AchievementCategory groups badges by difficulty tier
type AchievementCategory string

const (
	CategoryBeginner     AchievementCategory = "beginner"
	CategoryIntermediate AchievementCategory = "intermediate"
	CategoryExpert       AchievementCategory = "expert"
	CategoryLegendary    AchievementCategory = "legendary"
)

// UserStats is the per-participant season rollup achievements are judged
// against. Streaks count consecutive matchdays of participation; the
// current streak only runs while the participant played the latest
// scored matchday.
type UserStats struct {
	ParticipantID      string  `json:"participant_id"`
	TotalSchedine      int     `json:"total_schedine"`
	CorrectPredictions int     `json:"correct_predictions"`
	TotalPredictions   int     `json:"total_predictions"`
	WeeklyWins         int     `json:"weekly_wins"`
	PerfectSchedine    int     `json:"perfect_schedine"`
	CurrentStreak      int     `json:"current_streak"`
	BestStreak         int     `json:"best_streak"`
	TotalPoints        float64 `json:"total_points"`
	Rank               int     `json:"rank"`
	ParticipantCount   int     `json:"participant_count"`
	HighestOddsWon     float64 `json:"highest_odds_won"`
	PokerCount         int     `json:"poker_count"`
	ComebackWins       int     `json:"comeback_wins"`
	FirstPlaceFinishes int     `json:"first_place_finishes"`
}

// AchievementProgress tracks how close a participant is to a
// progressive badge
type AchievementProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// AchievementStatus is one badge of the catalog evaluated against a
// participant's stats
type AchievementStatus struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Category    AchievementCategory  `json:"category"`
	Points      int                  `json:"points"`
	Unlocked    bool                 `json:"unlocked"`
	Progress    *AchievementProgress `json:"progress,omitempty"`
}

// AchievementSummary aggregates a participant's badge collection
type AchievementSummary struct {
	UnlockedCount int `json:"unlocked_count"`
	TotalCount    int `json:"total_count"`
	Percentage    int `json:"percentage"`
	EarnedPoints  int `json:"earned_points"`
	TotalPoints   int `json:"total_points"`
}

// AchievementReport is the full achievements readout for one participant
type AchievementReport struct {
	ParticipantID string              `json:"participant_id"`
	Stats         UserStats           `json:"stats"`
	Unlocked      []AchievementStatus `json:"unlocked"`
	Locked        []AchievementStatus `json:"locked"`
	Next          []AchievementStatus `json:"next"`
	Summary       AchievementSummary  `json:"summary"`
}
