package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fantaschedina/backend/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req SubmitSchedinaRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit schedina"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// GetIntQueryParam retrieves a required integer query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName), http.StatusBadRequest)
		return 0, false
	}
	return value, true
}
