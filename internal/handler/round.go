package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/prize"
	"github.com/fantaschedina/backend/internal/scoring"
)

// RoundHandler serves round-boundary operations: scoring and settlement
type RoundHandler struct {
	scoringSvc scoring.Service
	prizeSvc   prize.Service
}

// NewRoundHandler creates a new RoundHandler
func NewRoundHandler(scoringSvc scoring.Service, prizeSvc prize.Service) *RoundHandler {
	return &RoundHandler{
		scoringSvc: scoringSvc,
		prizeSvc:   prizeSvc,
	}
}

// RoundRequest identifies the matchday a round operation applies to
type RoundRequest struct {
	Matchday int `json:"matchday" validate:"required,min=1"`
}

// EvaluateRoundResponse carries the round's scored slates
type EvaluateRoundResponse struct {
	Matchday int                     `json:"matchday"`
	Scored   int                     `json:"scored"`
	Results  []domain.SchedinaResult `json:"results"`
}

// HandleEvaluateRound scores every locked schedina of a matchday
// @Summary Evaluate a round
// @Description Grades every locked schedina of the matchday against known match results
// @Tags round
// @Accept json
// @Produce json
// @Success 200 {object} EvaluateRoundResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/round/evaluate [post]
func (h *RoundHandler) HandleEvaluateRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate round"); err != nil {
		return
	}

	results, err := h.scoringSvc.EvaluateRound(r.Context(), req.Matchday)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to evaluate round", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, EvaluateRoundResponse{
		Matchday: req.Matchday,
		Scored:   len(results),
		Results:  results,
	})
}

// SettleRoundResponse carries the settlement outcome
type SettleRoundResponse struct {
	Matchday int              `json:"matchday"`
	Pool     domain.PrizePool `json:"pool"`
	Payouts  []domain.Payout  `json:"payouts"`
}

// HandleSettleRound runs the round settlement workflow
// @Summary Settle a round
// @Description Splits the weekly pool, awards or rolls over the special prizes, persists payouts
// @Tags round
// @Accept json
// @Produce json
// @Success 200 {object} SettleRoundResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/round/settle [post]
func (h *RoundHandler) HandleSettleRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Settle round"); err != nil {
		return
	}

	pool, payouts, err := h.prizeSvc.SettleRound(r.Context(), req.Matchday)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to settle round", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SettleRoundResponse{
		Matchday: req.Matchday,
		Pool:     *pool,
		Payouts:  payouts,
	})
}

// PayoutHistoryResponse carries the payouts of one settled round
type PayoutHistoryResponse struct {
	Matchday int             `json:"matchday"`
	Payouts  []domain.Payout `json:"payouts"`
}

// HandleGetPayouts returns the payouts awarded for one round
// @Summary Get round payout history
// @Tags round
// @Produce json
// @Param matchday query int true "Matchday"
// @Success 200 {object} PayoutHistoryResponse
// @Router /api/v1/round/payouts [get]
func (h *RoundHandler) HandleGetPayouts(w http.ResponseWriter, r *http.Request) {
	matchday, ok := GetIntQueryParam(r, w, "matchday")
	if !ok {
		return
	}

	payouts, err := h.prizeSvc.PayoutHistory(r.Context(), matchday)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get payout history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, PayoutHistoryResponse{Matchday: matchday, Payouts: payouts})
}

// HandleGetDistribution previews the current weekly pool split
// @Summary Preview weekly prize distribution
// @Tags round
// @Produce json
// @Success 200 {object} domain.WeeklyDistribution
// @Router /api/v1/round/distribution [get]
func (h *RoundHandler) HandleGetDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.prizeSvc.PreviewDistribution(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to preview distribution", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, dist)
}
