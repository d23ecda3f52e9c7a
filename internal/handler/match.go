package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/scoring"
)

// MatchHandler serves fixture readouts
type MatchHandler struct {
	service scoring.Service
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(service scoring.Service) *MatchHandler {
	return &MatchHandler{service: service}
}

// HandleGetMatch returns one fixture, including its result once known
// @Summary Get a match
// @Tags match
// @Produce json
// @Param id query string true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/matches [get]
func (h *MatchHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}

	match, err := h.service.GetMatch(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get match", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, match)
}
