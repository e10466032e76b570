package repository

import (
	"context"
	"fmt"

	"curation-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CollectionRepository handles database operations for collections
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

const collectionColumns = `id, user_id, name, description, category, pictures, recommendation_ids, created_at`

func scanCollection(row interface{ Scan(dest ...any) error }) (*models.Collection, error) {
	var c models.Collection
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Category,
		&c.Pictures, &c.RecommendationIDs, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new collection
func (r *CollectionRepository) Create(ctx context.Context, c *models.Collection) error {
	query := `
		INSERT INTO collections (user_id, name, description, category, pictures, recommendation_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		c.UserID, c.Name, c.Description, c.Category, c.Pictures, c.RecommendationIDs, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// GetByID retrieves a collection by ID
func (r *CollectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`
	c, err := scanCollection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return c, nil
}

// ListByUser retrieves a user's collections newest-first with pagination,
// along with the total unpaginated count.
func (r *CollectionRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Collection, int, error) {
	countQuery := `SELECT COUNT(*) FROM collections WHERE user_id = $1`
	var total int
	err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count collections: %w", err)
	}

	query := `
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating collections: %w", err)
	}

	return collections, total, nil
}

// Delete deletes a collection and returns the deleted row.
// Returns pgx.ErrNoRows (wrapped) when no such collection exists.
func (r *CollectionRepository) Delete(ctx context.Context, id int64) (*models.Collection, error) {
	query := `DELETE FROM collections WHERE id = $1 RETURNING ` + collectionColumns
	c, err := scanCollection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete collection: %w", err)
	}
	return c, nil
}

// AppendRecommendation appends a recommendation id to the collection's
// membership array. The duplicate guard and the append run in one statement,
// so concurrent requests cannot both insert the same id.
// Returns pgx.ErrNoRows (wrapped) when the collection is missing or the id
// is already a member.
func (r *CollectionRepository) AppendRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error) {
	query := `
		UPDATE collections
		SET recommendation_ids = array_append(COALESCE(recommendation_ids, '{}'), $2)
		WHERE id = $1 AND NOT (COALESCE(recommendation_ids, '{}') @> ARRAY[$2]::bigint[])
		RETURNING ` + collectionColumns
	c, err := scanCollection(r.db.QueryRow(ctx, query, collectionID, recommendationID))
	if err != nil {
		return nil, fmt.Errorf("failed to append recommendation: %w", err)
	}
	return c, nil
}

// RemoveRecommendation removes all occurrences of a recommendation id from
// the collection's membership array, in the same conditional-update shape as
// AppendRecommendation. Returns pgx.ErrNoRows (wrapped) when the collection
// is missing or the id is not a member.
func (r *CollectionRepository) RemoveRecommendation(ctx context.Context, collectionID, recommendationID int64) (*models.Collection, error) {
	query := `
		UPDATE collections
		SET recommendation_ids = array_remove(recommendation_ids, $2)
		WHERE id = $1 AND recommendation_ids @> ARRAY[$2]::bigint[]
		RETURNING ` + collectionColumns
	c, err := scanCollection(r.db.QueryRow(ctx, query, collectionID, recommendationID))
	if err != nil {
		return nil, fmt.Errorf("failed to remove recommendation: %w", err)
	}
	return c, nil
}
