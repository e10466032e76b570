package services

import (
	"context"
	"fmt"
	"time"

	"curation-backend/internal/models"
)

// Defaults applied when a user row is created lazily and the request did
// not carry a name or email.
const (
	DefaultUserName  = "Default Name"
	DefaultUserEmail = "default@example.com"
)

// UserStore is the storage surface the user service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateWithID(ctx context.Context, user *models.User) error
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}

// UserService handles user-related business logic
type UserService struct {
	userStore UserStore
}

// NewUserService creates a new user service
func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// CreateUser creates a new user with a server-generated id
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userStore.List(ctx)
}

// ensureUser creates a stub user row for the given id unless one already
// exists. name and email fall back to the package defaults when empty.
// Shared by the collection and recommendation creation paths so the
// lazy-creation policy stays uniform.
func ensureUser(ctx context.Context, store UserStore, id int64, name, email string) error {
	exists, err := store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil
	}

	if name == "" {
		name = DefaultUserName
	}
	if email == "" {
		email = DefaultUserEmail
	}

	user := &models.User{
		ID:        id,
		Fname:     name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := store.CreateWithID(ctx, user); err != nil {
		return err
	}
	return nil
}
