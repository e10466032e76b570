package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"curation-backend/internal/services"

	"github.com/go-playground/validator/v10"
)

// validate checks request payload structs against their validate tags
var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// errorStatus maps service errors onto HTTP status codes: missing entities
// are 404, invalid operations are 400, everything else is surfaced as 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCollectionNotFound),
		errors.Is(err, services.ErrRecommendationNotFound),
		errors.Is(err, services.ErrNotInCollection):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOwnerMismatch),
		errors.Is(err, services.ErrAlreadyInCollection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
