package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curation-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// CollectionStore is the storage surface the collection service needs
type CollectionStore interface {
	Create(ctx context.Context, c *models.Collection) error
	GetByID(ctx context.Context, id int64) (*models.Collection, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Collection, int, error)
	Delete(ctx context.Context, id int64) (*models.Collection, error)
	AppendRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error)
	RemoveRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error)
}

// RecommendationGetter is the slice of recommendation storage the
// collection service needs for membership validation
type RecommendationGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Recommendation, error)
}

// CollectionService handles collection-related business logic
type CollectionService struct {
	collectionStore CollectionStore
	recStore        RecommendationGetter
	userStore       UserStore
}

// NewCollectionService creates a new collection service
func NewCollectionService(collectionStore CollectionStore, recStore RecommendationGetter, userStore UserStore) *CollectionService {
	return &CollectionService{
		collectionStore: collectionStore,
		recStore:        recStore,
		userStore:       userStore,
	}
}

// CreateCollection creates a collection, lazily creating the owning user
// if the id is unknown. A failure after the user insert leaves the user
// row in place; callers must not assume failure implies no side effects.
func (s *CollectionService) CreateCollection(ctx context.Context, c *models.Collection, userName, userEmail string) (*models.Collection, error) {
	if err := ensureUser(ctx, s.userStore, c.UserID, userName, userEmail); err != nil {
		return nil, err
	}

	if c.Pictures == nil {
		c.Pictures = []string{}
	}
	c.RecommendationIDs = []int64{}
	c.CreatedAt = time.Now()

	if err := s.collectionStore.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCollections returns one page of a user's collections newest-first,
// plus the total unpaginated count. The user must exist.
func (s *CollectionService) ListCollections(ctx context.Context, userID int64, page, limit int) ([]*models.Collection, int, error) {
	exists, err := s.userStore.Exists(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, 0, ErrUserNotFound
	}

	offset := (page - 1) * limit
	collections, total, err := s.collectionStore.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return collections, total, nil
}

// DeleteCollection hard-deletes a collection and returns the deleted row
func (s *CollectionService) DeleteCollection(ctx context.Context, id int64) (*models.Collection, error) {
	c, err := s.collectionStore.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return c, nil
}

// AddRecommendation adds a recommendation to a collection's membership
// array. The recommendation must exist, belong to the collection's owner,
// and not already be a member. The append itself is a single conditional
// update, so the preceding reads only decide which error to report.
func (s *CollectionService) AddRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error) {
	c, err := s.collectionStore.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	rec, err := s.recStore.GetByID(ctx, recommendationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}

	if rec.UserID != c.UserID {
		return nil, ErrOwnerMismatch
	}
	if containsID(c.RecommendationIDs, recommendationID) {
		return nil, ErrAlreadyInCollection
	}

	updated, err := s.collectionStore.AppendRecommendation(ctx, collectionID, recommendationID)
	if err != nil {
		// The guarded update matched no row: between our read and the write
		// a concurrent request either won the append or deleted the
		// collection. Re-read to report the right error.
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := s.collectionStore.GetByID(ctx, collectionID); getErr != nil {
				if errors.Is(getErr, pgx.ErrNoRows) {
					return nil, ErrCollectionNotFound
				}
				return nil, getErr
			}
			return nil, ErrAlreadyInCollection
		}
		return nil, err
	}
	return updated, nil
}

// RemoveRecommendation removes all occurrences of a recommendation id from
// a collection's membership array. The id must currently be a member.
func (s *CollectionService) RemoveRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error) {
	c, err := s.collectionStore.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	if !containsID(c.RecommendationIDs, recommendationID) {
		return nil, ErrNotInCollection
	}

	updated, err := s.collectionStore.RemoveRecommendation(ctx, collectionID, recommendationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotInCollection
		}
		return nil, err
	}
	return updated, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
