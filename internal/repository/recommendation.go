package repository

import (
	"context"
	"fmt"

	"curation-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationRepository handles database operations for recommendations
type RecommendationRepository struct {
	db *pgxpool.Pool
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Create creates a new recommendation
func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	query := `
		INSERT INTO recommendations (user_id, title, caption, category, pictures, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.Title, rec.Caption, rec.Category, rec.Pictures, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to create recommendation: %w", err)
	}
	return nil
}

// GetByID retrieves a recommendation by ID
func (r *RecommendationRepository) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	query := `
		SELECT id, user_id, title, caption, category, pictures, created_at
		FROM recommendations
		WHERE id = $1
	`
	var rec models.Recommendation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Caption,
		&rec.Category, &rec.Pictures, &rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}
	return &rec, nil
}

// List retrieves all recommendations
func (r *RecommendationRepository) List(ctx context.Context) ([]*models.Recommendation, error) {
	query := `
		SELECT id, user_id, title, caption, category, pictures, created_at
		FROM recommendations
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Title, &rec.Caption,
			&rec.Category, &rec.Pictures, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendations: %w", err)
	}

	return recs, nil
}
