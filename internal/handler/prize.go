package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/prize"
)

// PrizeHandler serves pool state and fee quotes
type PrizeHandler struct {
	service prize.Service
}

// NewPrizeHandler creates a new PrizeHandler
func NewPrizeHandler(service prize.Service) *PrizeHandler {
	return &PrizeHandler{service: service}
}

// HandleGetPrizePool returns the current prize pool state
// @Summary Get the prize pool
// @Tags prize
// @Produce json
// @Success 200 {object} domain.PrizePool
// @Router /api/v1/pool [get]
func (h *PrizeHandler) HandleGetPrizePool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.service.GetPrizePool(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get prize pool", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, pool)
}

// HandleGetLateEntryFee quotes the entry fee for joining at a matchday
// @Summary Quote the late-entry fee
// @Tags prize
// @Produce json
// @Param matchday query int true "Matchday the participant would join at"
// @Success 200 {object} domain.LateEntryFee
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/fees/late-entry [get]
func (h *PrizeHandler) HandleGetLateEntryFee(w http.ResponseWriter, r *http.Request) {
	matchday, ok := GetIntQueryParam(r, w, "matchday")
	if !ok {
		return
	}

	fee, err := h.service.LateEntryFee(r.Context(), matchday)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to quote late entry fee", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, fee)
}
