package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/logger"
	"github.com/fantaschedina/backend/internal/scoring"
)

// SchedinaHandler serves slate submission and result lookup
type SchedinaHandler struct {
	service scoring.Service
}

// NewSchedinaHandler creates a new SchedinaHandler
func NewSchedinaHandler(service scoring.Service) *SchedinaHandler {
	return &SchedinaHandler{service: service}
}

// SubmitSchedinaRequest is the payload for submitting a complete slate
type SubmitSchedinaRequest struct {
	ParticipantID string              `json:"participant_id" validate:"required,max=64"`
	Matchday      int                 `json:"matchday" validate:"required,min=1"`
	Predictions   []PredictionPayload `json:"predictions" validate:"required,dive"`
}

// PredictionPayload is one pick within a submission
type PredictionPayload struct {
	MatchID string  `json:"match_id" validate:"required"`
	BetType string  `json:"bet_type" validate:"required,bettype"`
	Outcome string  `json:"outcome" validate:"required"`
	Odds    float64 `json:"odds" validate:"required,gt=0"`
}

// HandleSubmitSchedina submits and locks a complete slate
// @Summary Submit a schedina
// @Description Validates and locks a complete slate of predictions for a matchday
// @Tags schedina
// @Accept json
// @Produce json
// @Success 201 {object} domain.Schedina
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/schedina [post]
func (h *SchedinaHandler) HandleSubmitSchedina(w http.ResponseWriter, r *http.Request) {
	var req SubmitSchedinaRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit schedina"); err != nil {
		return
	}

	predictions := make([]domain.Prediction, 0, len(req.Predictions))
	for _, p := range req.Predictions {
		predictions = append(predictions, domain.Prediction{
			MatchID: p.MatchID,
			BetType: domain.BetType(p.BetType),
			Outcome: p.Outcome,
			Odds:    p.Odds,
		})
	}

	schedina, err := h.service.SubmitSchedina(r.Context(), req.ParticipantID, req.Matchday, predictions)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to submit schedina", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, schedina)
}

// HandleGetSchedina returns a submitted slate
// @Summary Get a submitted schedina
// @Tags schedina
// @Produce json
// @Param id query string true "Schedina ID"
// @Success 200 {object} domain.Schedina
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/schedina [get]
func (h *SchedinaHandler) HandleGetSchedina(w http.ResponseWriter, r *http.Request) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSchedinaID, http.StatusBadRequest)
		return
	}

	schedina, err := h.service.GetSchedina(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get schedina", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, schedina)
}

// HandleGetSchedinaResult returns the scored result of a slate
// @Summary Get a scored schedina
// @Tags schedina
// @Produce json
// @Param id query string true "Schedina ID"
// @Success 200 {object} domain.SchedinaResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/schedina/result [get]
func (h *SchedinaHandler) HandleGetSchedinaResult(w http.ResponseWriter, r *http.Request) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSchedinaID, http.StatusBadRequest)
		return
	}

	result, err := h.service.GetSchedinaResult(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get schedina result", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
