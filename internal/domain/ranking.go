package domain

// RankingEntry is one row of the cumulative season standings
type RankingEntry struct {
	Rank                     int     `json:"rank"`
	ParticipantID            string  `json:"participant_id"`
	TotalPoints              float64 `json:"total_points"`
	MatchdaysPlayed          int     `json:"matchdays_played"`
	CorrectPredictions       int     `json:"correct_predictions"`
	AveragePointsPerMatchday float64 `json:"average_points_per_matchday"`
	BestMatchdayPoints       float64 `json:"best_matchday_points"`
	PerfectSchedine          int     `json:"perfect_schedine"`
	BonusPointsTotal         float64 `json:"bonus_points_total"`
	PenaltyPointsTotal       float64 `json:"penalty_points_total"`
	WeeklyWins               int     `json:"weekly_wins"`
}

// WeeklyRanking is the ordered result of a single matchday
type WeeklyRanking struct {
	Matchday int              `json:"matchday"`
	Entries  []SchedinaResult `json:"entries"`
	WinnerID string           `json:"winner_id,omitempty"`
}
