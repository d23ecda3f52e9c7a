package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/ranking"
)

// RankingHandler serves season and weekly standings
type RankingHandler struct {
	service ranking.Service
}

// NewRankingHandler creates a new RankingHandler
func NewRankingHandler(service ranking.Service) *RankingHandler {
	return &RankingHandler{service: service}
}

// HandleGetStandings returns the cumulative season standings
// @Summary Get season standings
// @Tags ranking
// @Produce json
// @Success 200 {array} domain.RankingEntry
// @Router /api/v1/rankings [get]
func (h *RankingHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.Standings(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get standings", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// HandleGetWeeklyRanking returns one matchday's ordered results
// @Summary Get a weekly ranking
// @Tags ranking
// @Produce json
// @Param matchday query int true "Matchday"
// @Success 200 {object} domain.WeeklyRanking
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/rankings/weekly [get]
func (h *RankingHandler) HandleGetWeeklyRanking(w http.ResponseWriter, r *http.Request) {
	matchday, ok := GetIntQueryParam(r, w, "matchday")
	if !ok {
		return
	}

	weekly, err := h.service.WeeklyRanking(r.Context(), matchday)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get weekly ranking", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, weekly)
}
