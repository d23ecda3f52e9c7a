package handler

import (
	"net/http"

	"github.com/fantaschedina/backend/internal/domain"
)

// TournamentHandler exposes the active tournament regulation
type TournamentHandler struct {
	config *domain.TournamentConfig
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(config *domain.TournamentConfig) *TournamentHandler {
	return &TournamentHandler{config: config}
}

// HandleGetTournamentConfig returns the active tournament configuration
// @Summary Get tournament configuration
// @Tags tournament
// @Produce json
// @Success 200 {object} domain.TournamentConfig
// @Router /api/v1/tournament/config [get]
func (h *TournamentHandler) HandleGetTournamentConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.config)
}
