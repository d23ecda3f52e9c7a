package scoring

import (
	"strings"

	"github.com/fantaschedina/backend/internal/domain"
)

// OverUnderGoalLine is the implicit goal line of the plain over/under
// market. Multigoal picks carry their own line in the outcome value.
const OverUnderGoalLine = 2.5

// gradePrediction decides correctness of a pick against a finished match
// result, using the market's own predicate. The half-goal lines make
// pushes impossible.
func gradePrediction(pred domain.Prediction, result domain.MatchResult) bool {
	switch pred.BetType {
	case domain.BetTypeEsito:
		return pred.Outcome == string(result.Outcome)

	case domain.BetTypeOverUnder:
		if pred.Outcome == domain.OutcomeOver {
			return float64(result.TotalGoals()) > OverUnderGoalLine
		}
		return float64(result.TotalGoals()) < OverUnderGoalLine

	case domain.BetTypeGoalNoGoal:
		if pred.Outcome == domain.OutcomeGoal {
			return result.BothScored()
		}
		return !result.BothScored()

	case domain.BetTypeDoppiaChance:
		// "1X", "12", "X2" are sets of single outcomes
		return strings.Contains(pred.Outcome, string(result.Outcome))

	case domain.BetTypeMultigoal:
		over, line, err := domain.ParseMultigoalLine(pred.Outcome)
		if err != nil {
			return false
		}
		if over {
			return float64(result.TotalGoals()) > line
		}
		return float64(result.TotalGoals()) < line
	}

	return false
}

// EvaluateSchedina grades every pick of a slate against the supplied
// matches and produces the scored, locked result. Picks referencing an
// unknown or unfinished match grade as incorrect rather than failing the
// whole round. The projection is idempotent: identical inputs yield an
// identical result.
//
// With cfg.LegacyOutcomeGrading set, every market is graded by comparing
// the raw 1/X/2 outcome to the picked outcome, which reproduces the
// historical behavior (only meaningful for the esito market).
func EvaluateSchedina(schedina domain.Schedina, matches []domain.Match, cfg *domain.TournamentConfig) domain.SchedinaResult {
	byID := make(map[string]domain.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	results := make([]domain.PredictionResult, 0, len(schedina.Predictions))
	for _, pred := range schedina.Predictions {
		isCorrect := false
		if match, ok := byID[pred.MatchID]; ok && match.IsFinished() {
			if cfg.LegacyOutcomeGrading {
				isCorrect = pred.Outcome == string(match.Result.Outcome)
			} else {
				isCorrect = gradePrediction(pred, *match.Result)
			}
		}

		results = append(results, domain.PredictionResult{
			Prediction:   pred,
			IsCorrect:    isCorrect,
			PointsEarned: CalculateBetPoints(pred.Odds, isCorrect, cfg),
		})
	}

	score := CalculateSchedinaScore(results, cfg)

	return domain.SchedinaResult{
		ID:                 schedina.ID,
		ParticipantID:      schedina.ParticipantID,
		Matchday:           schedina.Matchday,
		Predictions:        results,
		SubmittedAt:        schedina.SubmittedAt,
		IsLocked:           true,
		TotalPoints:        score.BasePoints,
		CorrectPredictions: score.Details.CorrectPredictions,
		BonusPoints:        score.BonusPoints,
		PenaltyPoints:      score.PenaltyPoints,
		FinalPoints:        score.FinalPoints,
	}
}
