package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"curation-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CollectionService is the service surface the collection handler needs
type CollectionService interface {
	CreateCollection(ctx context.Context, c *models.Collection, userName, userEmail string) (*models.Collection, error)
	ListCollections(ctx context.Context, userID int64, page, limit int) ([]*models.Collection, int, error)
	DeleteCollection(ctx context.Context, id int64) (*models.Collection, error)
	AddRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error)
	RemoveRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error)
}

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	collectionService CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// CreateCollectionRequest represents the request body for creating a collection
type CreateCollectionRequest struct {
	UserID      int64    `json:"user_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Pictures    []string `json:"pictures"`
	UserName    string   `json:"user_name"`
	UserEmail   string   `json:"user_email" validate:"omitempty,email"`
}

// CreateCollection handles POST /api/collections
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	collection := &models.Collection{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Pictures:    req.Pictures,
	}

	created, err := h.collectionService.CreateCollection(ctx, collection, req.UserName, req.UserEmail)
	if err != nil {
		log.Error().
			Err(err).
			Int64("user_id", req.UserID).
			Msg("Failed to create collection")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("collection_id", created.ID).
		Int64("user_id", created.UserID).
		Msg("Collection created")

	respondJSON(w, http.StatusCreated, created)
}

// ListCollections handles GET /api/collections
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		respondError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	page := 1
	limit := 10
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	collections, total, err := h.collectionService.ListCollections(ctx, userID, page, limit)
	if err != nil {
		log.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("Failed to list collections")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	if collections == nil {
		collections = []*models.Collection{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"collections": collections,
		"total_count": total,
		"page":        page,
		"limit":       limit,
	})
}

// DeleteCollection handles DELETE /api/collections/{collectionID}
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, err := strconv.ParseInt(chi.URLParam(r, "collectionID"), 10, 64)
	if err != nil {
		respondError(w, "Invalid collection id", http.StatusBadRequest)
		return
	}

	deleted, err := h.collectionService.DeleteCollection(ctx, collectionID)
	if err != nil {
		log.Error().
			Err(err).
			Int64("collection_id", collectionID).
			Msg("Failed to delete collection")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("collection_id", collectionID).
		Msg("Collection deleted")

	respondJSON(w, http.StatusOK, deleted)
}

// AddRecommendation handles POST /api/collections/{collectionID}/recommendations/{recommendationID}
func (h *CollectionHandler) AddRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, recommendationID, ok := membershipParams(w, r)
	if !ok {
		return
	}

	updated, err := h.collectionService.AddRecommendation(ctx, collectionID, recommendationID)
	if err != nil {
		log.Error().
			Err(err).
			Int64("collection_id", collectionID).
			Int64("recommendation_id", recommendationID).
			Msg("Failed to add recommendation to collection")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("collection_id", collectionID).
		Int64("recommendation_id", recommendationID).
		Msg("Recommendation added to collection")

	respondJSON(w, http.StatusCreated, updated)
}

// RemoveRecommendation handles DELETE /api/collections/{collectionID}/recommendations/{recommendationID}
func (h *CollectionHandler) RemoveRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, recommendationID, ok := membershipParams(w, r)
	if !ok {
		return
	}

	updated, err := h.collectionService.RemoveRecommendation(ctx, collectionID, recommendationID)
	if err != nil {
		log.Error().
			Err(err).
			Int64("collection_id", collectionID).
			Int64("recommendation_id", recommendationID).
			Msg("Failed to remove recommendation from collection")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("collection_id", collectionID).
		Int64("recommendation_id", recommendationID).
		Msg("Recommendation removed from collection")

	respondJSON(w, http.StatusOK, updated)
}

// membershipParams extracts the collection and recommendation ids from the
// membership routes, responding with 400 itself when either is malformed
func membershipParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	collectionID, err := strconv.ParseInt(chi.URLParam(r, "collectionID"), 10, 64)
	if err != nil {
		respondError(w, "Invalid collection id", http.StatusBadRequest)
		return 0, 0, false
	}
	recommendationID, err := strconv.ParseInt(chi.URLParam(r, "recommendationID"), 10, 64)
	if err != nil {
		respondError(w, "Invalid recommendation id", http.StatusBadRequest)
		return 0, 0, false
	}
	return collectionID, recommendationID, true
}
