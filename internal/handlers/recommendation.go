package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"curation-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// RecommendationService is the service surface the recommendation handler needs
type RecommendationService interface {
	CreateRecommendation(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error)
	ListRecommendations(ctx context.Context) ([]*models.Recommendation, error)
}

// RecommendationHandler handles recommendation-related HTTP requests
type RecommendationHandler struct {
	recommendationService RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// CreateRecommendationRequest represents the request body for creating a recommendation
type CreateRecommendationRequest struct {
	UserID    int64     `json:"user_id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Caption   string    `json:"caption"`
	Category  string    `json:"category"`
	Pictures  []string  `json:"pictures"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRecommendation handles POST /api/recommendations
func (h *RecommendationHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := &models.Recommendation{
		UserID:    req.UserID,
		Title:     req.Title,
		Caption:   req.Caption,
		Category:  req.Category,
		Pictures:  req.Pictures,
		CreatedAt: req.CreatedAt,
	}

	created, err := h.recommendationService.CreateRecommendation(ctx, rec)
	if err != nil {
		log.Error().
			Err(err).
			Int64("user_id", req.UserID).
			Msg("Failed to create recommendation")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("recommendation_id", created.ID).
		Int64("user_id", created.UserID).
		Msg("Recommendation created")

	respondJSON(w, http.StatusCreated, created)
}

// ListRecommendations handles GET /api/recommendations
func (h *RecommendationHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recs, err := h.recommendationService.ListRecommendations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recommendations")
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if recs == nil {
		recs = []*models.Recommendation{}
	}

	respondJSON(w, http.StatusOK, recs)
}
