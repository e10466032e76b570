package services

import (
	"context"
	"time"

	"curation-backend/internal/models"
)

// RecommendationStore is the storage surface the recommendation service needs
type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	GetByID(ctx context.Context, id int64) (*models.Recommendation, error)
	List(ctx context.Context) ([]*models.Recommendation, error)
}

// RecommendationService handles recommendation-related business logic
type RecommendationService struct {
	recStore  RecommendationStore
	userStore UserStore
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(recStore RecommendationStore, userStore UserStore) *RecommendationService {
	return &RecommendationService{recStore: recStore, userStore: userStore}
}

// CreateRecommendation creates a recommendation, lazily creating the owning
// user if the id is unknown (same policy as collection creation).
func (s *RecommendationService) CreateRecommendation(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	if err := ensureUser(ctx, s.userStore, rec.UserID, "", ""); err != nil {
		return nil, err
	}

	if rec.Pictures == nil {
		rec.Pictures = []string{}
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	if err := s.recStore.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecommendations retrieves all recommendations
func (s *RecommendationService) ListRecommendations(ctx context.Context) ([]*models.Recommendation, error) {
	return s.recStore.List(ctx)
}
