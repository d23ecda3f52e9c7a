package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fantaschedina/backend/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Schedina messages
	ErrMsgSchedinaNotFoundError   = "Schedina not found"
	ErrMsgSchedinaIncompleteError = "Schedina is incomplete: one prediction per match is required"
	ErrMsgInvalidPredictionError  = "Invalid prediction"

	// Match messages
	ErrMsgMatchNotFoundError = "Match not found"

	// Round messages
	ErrMsgRoundNotScoredError      = "Round has not been scored yet"
	ErrMsgRoundAlreadySettledError = "Round has already been settled"
	ErrMsgNoParticipantsError      = "No participants in this round"

	// Prize messages
	ErrMsgJoinWindowClosedError = "Registration is closed for this season"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSchedinaNotFound):
		return http.StatusNotFound, ErrMsgSchedinaNotFoundError
	case errors.Is(err, domain.ErrSchedinaIncomplete):
		return http.StatusBadRequest, ErrMsgSchedinaIncompleteError
	case errors.Is(err, domain.ErrInvalidBetType), errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusBadRequest, ErrMsgInvalidPredictionError
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, ErrMsgMatchNotFoundError
	case errors.Is(err, domain.ErrRoundNotScored):
		return http.StatusConflict, ErrMsgRoundNotScoredError
	case errors.Is(err, domain.ErrRoundAlreadySettled):
		return http.StatusConflict, ErrMsgRoundAlreadySettledError
	case errors.Is(err, domain.ErrNoParticipants):
		return http.StatusConflict, ErrMsgNoParticipantsError
	case errors.Is(err, domain.ErrJoinWindowClosed):
		return http.StatusForbidden, ErrMsgJoinWindowClosedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
