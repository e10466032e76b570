package repository

import (
	"context"
	"fmt"

	"curation-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user with a server-generated id
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (fname, sname, email, profile_picture, bio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		user.Fname, user.Sname, user.Email, user.ProfilePicture, user.Bio, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateWithID creates a new user under a caller-chosen id. Used by the
// lazy-creation path, where the id arrives in the request.
func (r *UserRepository) CreateWithID(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, fname, sname, email, profile_picture, bio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Fname, user.Sname, user.Email, user.ProfilePicture, user.Bio, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// An explicit id bypasses the identity sequence. Push the sequence past
	// it so later server-generated ids cannot collide with this row.
	bump := `
		SELECT setval(pg_get_serial_sequence('users', 'id'),
			GREATEST($1::bigint, (SELECT last_value FROM users_id_seq)))
	`
	if _, err := r.db.Exec(ctx, bump, user.ID); err != nil {
		return fmt.Errorf("failed to advance user id sequence: %w", err)
	}
	return nil
}

// Exists checks if a user with the given id exists
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// List retrieves all users
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, fname, sname, email, profile_picture, bio, created_at
		FROM users
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Fname, &user.Sname, &user.Email,
			&user.ProfilePicture, &user.Bio, &user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
