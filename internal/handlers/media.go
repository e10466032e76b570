package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"curation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// MediaService is the service surface the media handler needs
type MediaService interface {
	GetUploadURL(ctx context.Context, filename, contentType string) (*services.UploadResponse, error)
}

// MediaHandler handles picture upload HTTP requests
type MediaHandler struct {
	mediaService MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// CreateUploadRequest represents the request body for requesting an upload URL
type CreateUploadRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type"`
}

// CreateUpload handles POST /api/uploads
func (h *MediaHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	response, err := h.mediaService.GetUploadURL(ctx, req.Filename, req.ContentType)
	if err != nil {
		log.Error().
			Err(err).
			Str("filename", req.Filename).
			Msg("Failed to generate pre-signed URL")
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("filename", req.Filename).
		Msg("Pre-signed upload URL generated")

	respondJSON(w, http.StatusCreated, response)
}
