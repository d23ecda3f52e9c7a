package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/achievement"
	"github.com/fantaschedina/backend/internal/logger"
)

// AchievementHandler serves per-participant badge reports
type AchievementHandler struct {
	service achievement.Service
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(service achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// HandleGetAchievements returns a participant's achievement report
// @Summary Get achievements
// @Description Evaluates the badge catalog against the participant's season stats
// @Tags achievement
// @Produce json
// @Param participant query string true "Participant ID"
// @Success 200 {object} domain.AchievementReport
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetQueryParam(r, w, "participant")
	if !ok {
		return
	}

	report, err := h.service.Report(r.Context(), participantID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to build achievement report", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
