package achievement

import "github.com/fantaschedina/backend/internal/domain"

// Achievement is one badge of the catalog. Condition decides whether a
// participant has unlocked it; Progress, when set, reports how close a
// locked badge is to unlocking.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    domain.AchievementCategory
	Points      int
	Condition   func(domain.UserStats) bool
	Progress    func(domain.UserStats) domain.AchievementProgress
}

func countProgress(value func(domain.UserStats) int, target int) func(domain.UserStats) domain.AchievementProgress {
	return func(s domain.UserStats) domain.AchievementProgress {
		return domain.AchievementProgress{Current: min(value(s), target), Target: target}
	}
}

func accuracyAtLeast(threshold float64) func(domain.UserStats) bool {
	return func(s domain.UserStats) bool {
		return s.TotalPredictions > 0 && float64(s.CorrectPredictions)/float64(s.TotalPredictions) >= threshold
	}
}

// Catalog is the fixed badge catalog, ordered by tier
var Catalog = []Achievement{
	// Beginner
	{
		ID: "first_schedina", Name: "Prima Schedina",
		Description: "Hai inviato la tua prima schedina",
		Icon:        "🎯", Category: domain.CategoryBeginner, Points: 10,
		Condition: func(s domain.UserStats) bool { return s.TotalSchedine >= 1 },
	},
	{
		ID: "week_5", Name: "Veterano",
		Description: "Hai partecipato a 5 giornate",
		Icon:        "📅", Category: domain.CategoryBeginner, Points: 20,
		Condition: func(s domain.UserStats) bool { return s.TotalSchedine >= 5 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.TotalSchedine }, 5),
	},
	{
		ID: "first_correct", Name: "Primo Centro",
		Description: "Hai indovinato il tuo primo pronostico",
		Icon:        "✅", Category: domain.CategoryBeginner, Points: 5,
		Condition: func(s domain.UserStats) bool { return s.CorrectPredictions >= 1 },
	},
	{
		ID: "accuracy_50", Name: "Sulla Buona Strada",
		Description: "Precisione superiore al 50%",
		Icon:        "📊", Category: domain.CategoryBeginner, Points: 15,
		Condition: accuracyAtLeast(0.5),
	},

	// Intermediate
	{
		ID: "week_10", Name: "Habitué",
		Description: "Hai partecipato a 10 giornate",
		Icon:        "🏠", Category: domain.CategoryIntermediate, Points: 30,
		Condition: func(s domain.UserStats) bool { return s.TotalSchedine >= 10 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.TotalSchedine }, 10),
	},
	{
		ID: "first_win", Name: "Vincitore",
		Description: "Hai vinto la tua prima giornata",
		Icon:        "🏆", Category: domain.CategoryIntermediate, Points: 50,
		Condition: func(s domain.UserStats) bool { return s.WeeklyWins >= 1 },
	},
	{
		ID: "accuracy_60", Name: "Precisione 60%",
		Description: "Precisione superiore al 60%",
		Icon:        "🎯", Category: domain.CategoryIntermediate, Points: 25,
		Condition: accuracyAtLeast(0.6),
	},
	{
		ID: "streak_3", Name: "Costanza",
		Description: "3 settimane consecutive di partecipazione",
		Icon:        "🔥", Category: domain.CategoryIntermediate, Points: 30,
		Condition: func(s domain.UserStats) bool { return s.BestStreak >= 3 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.BestStreak }, 3),
	},
	{
		ID: "top_10", Name: "Top 10",
		Description: "Sei entrato nella top 10 della classifica",
		Icon:        "📈", Category: domain.CategoryIntermediate, Points: 40,
		Condition: func(s domain.UserStats) bool { return s.Rank > 0 && s.Rank <= 10 },
	},
	{
		ID: "high_odds", Name: "Rischiatore",
		Description: "Hai vinto con una quota superiore a 3.00",
		Icon:        "🎲", Category: domain.CategoryIntermediate, Points: 35,
		Condition: func(s domain.UserStats) bool { return s.HighestOddsWon >= 3.0 },
	},

	// Expert
	{
		ID: "week_20", Name: "Esperto",
		Description: "Hai partecipato a 20 giornate",
		Icon:        "🎓", Category: domain.CategoryExpert, Points: 50,
		Condition: func(s domain.UserStats) bool { return s.TotalSchedine >= 20 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.TotalSchedine }, 20),
	},
	{
		ID: "wins_3", Name: "Tripla Corona",
		Description: "Hai vinto 3 giornate",
		Icon:        "👑", Category: domain.CategoryExpert, Points: 75,
		Condition: func(s domain.UserStats) bool { return s.WeeklyWins >= 3 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.WeeklyWins }, 3),
	},
	{
		ID: "accuracy_70", Name: "Sniper",
		Description: "Precisione superiore al 70%",
		Icon:        "🔫", Category: domain.CategoryExpert, Points: 60,
		Condition: accuracyAtLeast(0.7),
	},
	{
		ID: "streak_5", Name: "Inarrestabile",
		Description: "5 settimane consecutive di partecipazione",
		Icon:        "⚡", Category: domain.CategoryExpert, Points: 50,
		Condition: func(s domain.UserStats) bool { return s.BestStreak >= 5 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.BestStreak }, 5),
	},
	{
		ID: "top_3", Name: "Podio",
		Description: "Sei nei primi 3 in classifica generale",
		Icon:        "🥇", Category: domain.CategoryExpert, Points: 80,
		Condition: func(s domain.UserStats) bool { return s.Rank > 0 && s.Rank <= 3 },
	},
	{
		ID: "poker", Name: "Poker!",
		Description: "Hai ottenuto il premio Poker (4 quote >2.00 vinte)",
		Icon:        "🃏", Category: domain.CategoryExpert, Points: 70,
		Condition: func(s domain.UserStats) bool { return s.PokerCount >= 1 },
	},
	{
		ID: "perfect_schedina", Name: "Perfezionista",
		Description: "Hai fatto una schedina perfetta",
		Icon:        "💯", Category: domain.CategoryExpert, Points: 100,
		Condition: func(s domain.UserStats) bool { return s.PerfectSchedine >= 1 },
	},

	// Legendary
	{
		ID: "wins_5", Name: "Dominatore",
		Description: "Hai vinto 5 giornate",
		Icon:        "👊", Category: domain.CategoryLegendary, Points: 120,
		Condition: func(s domain.UserStats) bool { return s.WeeklyWins >= 5 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.WeeklyWins }, 5),
	},
	{
		ID: "streak_10", Name: "Leggenda",
		Description: "10 settimane consecutive di partecipazione",
		Icon:        "🌟", Category: domain.CategoryLegendary, Points: 100,
		Condition: func(s domain.UserStats) bool { return s.BestStreak >= 10 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.BestStreak }, 10),
	},
	{
		ID: "first_place", Name: "Campione",
		Description: "Sei primo in classifica generale",
		Icon:        "🏅", Category: domain.CategoryLegendary, Points: 150,
		Condition: func(s domain.UserStats) bool { return s.Rank == 1 },
	},
	{
		ID: "giant_killer", Name: "Giant Killer",
		Description: "Hai vinto con una quota superiore a 4.00",
		Icon:        "🗡️", Category: domain.CategoryLegendary, Points: 100,
		Condition: func(s domain.UserStats) bool { return s.HighestOddsWon >= 4.0 },
	},
	{
		ID: "comeback_king", Name: "Re della Rimonta",
		Description: "Da fuori top 10 a top 3 in una stagione",
		Icon:        "🦁", Category: domain.CategoryLegendary, Points: 150,
		Condition: func(s domain.UserStats) bool { return s.ComebackWins >= 1 },
	},
	{
		ID: "perfect_3", Name: "Maestro",
		Description: "3 schedine perfette in carriera",
		Icon:        "🎭", Category: domain.CategoryLegendary, Points: 200,
		Condition: func(s domain.UserStats) bool { return s.PerfectSchedine >= 3 },
		Progress:  countProgress(func(s domain.UserStats) int { return s.PerfectSchedine }, 3),
	},
}
