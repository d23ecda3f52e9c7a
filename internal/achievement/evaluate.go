package achievement

import (
	"math"
	"sort"

	"github.com/fantaschedina/backend/internal/domain"
)

// NextTargetsLimit caps how many upcoming badges a report suggests
const NextTargetsLimit = 3

func status(a Achievement, stats domain.UserStats) domain.AchievementStatus {
	s := domain.AchievementStatus{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    a.Category,
		Points:      a.Points,
		Unlocked:    a.Condition(stats),
	}
	if a.Progress != nil {
		progress := a.Progress(stats)
		s.Progress = &progress
	}
	return s
}

// BuildReport evaluates the whole catalog against one participant's
// stats. Catalog order is preserved within the unlocked and locked
// lists; Next holds the locked progressive badges closest to unlocking.
func BuildReport(stats domain.UserStats) *domain.AchievementReport {
	report := &domain.AchievementReport{
		ParticipantID: stats.ParticipantID,
		Stats:         stats,
		Unlocked:      []domain.AchievementStatus{},
		Locked:        []domain.AchievementStatus{},
	}

	totalPoints := 0
	for _, badge := range Catalog {
		totalPoints += badge.Points
		st := status(badge, stats)
		if st.Unlocked {
			report.Unlocked = append(report.Unlocked, st)
			report.Summary.EarnedPoints += st.Points
		} else {
			report.Locked = append(report.Locked, st)
		}
	}

	report.Summary.UnlockedCount = len(report.Unlocked)
	report.Summary.TotalCount = len(Catalog)
	report.Summary.TotalPoints = totalPoints
	report.Summary.Percentage = int(math.Round(float64(len(report.Unlocked)) / float64(len(Catalog)) * 100))
	report.Next = nextTargets(report.Locked, NextTargetsLimit)

	return report
}

// nextTargets orders the locked badges by progress ratio, closest to
// completion first. Badges without a progress tracker rank last, so a
// stable sort keeps their catalog order.
func nextTargets(locked []domain.AchievementStatus, limit int) []domain.AchievementStatus {
	ordered := make([]domain.AchievementStatus, len(locked))
	copy(ordered, locked)

	ratio := func(s domain.AchievementStatus) float64 {
		if s.Progress == nil || s.Progress.Target == 0 {
			return 0
		}
		return float64(s.Progress.Current) / float64(s.Progress.Target)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ratio(ordered[i]) > ratio(ordered[j])
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
