package prize

import (
	"fmt"

	"github.com/fantaschedina/backend/internal/domain"
)

// CalculateLateEntryFee quotes the entry fee for a participant joining
// at the given matchday: the base participation fee plus a surcharge per
// matchday already elapsed. The whole amount is routed to the shared
// pool; entry fees carry no organizer cut. Joining past MaxJoinMatchday
// is disallowed.
func CalculateLateEntryFee(currentMatchday int, cfg *domain.TournamentConfig) (domain.LateEntryFee, error) {
	if currentMatchday < 1 {
		return domain.LateEntryFee{}, fmt.Errorf("%w: matchday %d", domain.ErrInvalidInput, currentMatchday)
	}
	if currentMatchday > cfg.MaxJoinMatchday {
		return domain.LateEntryFee{}, fmt.Errorf("%w: cannot join after matchday %d",
			domain.ErrJoinWindowClosed, cfg.MaxJoinMatchday)
	}

	baseFee := cfg.ParticipationFee
	additionalFee := float64(currentMatchday-1) * cfg.LateJoinFeePerMatchday
	totalFee := baseFee + additionalFee

	return domain.LateEntryFee{
		TotalFee:      totalFee,
		BaseFee:       baseFee,
		AdditionalFee: additionalFee,
		ToPool:        totalFee,
	}, nil
}
