package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"curation-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// UserService is the service surface the user handler needs
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Fname          string    `json:"fname" validate:"required"`
	Sname          string    `json:"sname"`
	Email          string    `json:"email" validate:"omitempty,email"`
	ProfilePicture string    `json:"profile_picture"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := &models.User{
		Fname:          req.Fname,
		Sname:          req.Sname,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		CreatedAt:      req.CreatedAt,
	}

	created, err := h.userService.CreateUser(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		respondError(w, err.Error(), errorStatus(err))
		return
	}

	log.Info().
		Int64("user_id", created.ID).
		Msg("User created")

	respondJSON(w, http.StatusCreated, created)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []*models.User{}
	}

	respondJSON(w, http.StatusOK, users)
}
