package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"curation-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type stubMediaService struct {
	getUploadURL func(ctx context.Context, filename, contentType string) (*services.UploadResponse, error)
}

func (s *stubMediaService) GetUploadURL(ctx context.Context, filename, contentType string) (*services.UploadResponse, error) {
	return s.getUploadURL(ctx, filename, contentType)
}

func newMediaRouter(svc MediaService) *chi.Mux {
	h := NewMediaHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/uploads", h.CreateUpload)
	return r
}

func TestCreateUploadHandler(t *testing.T) {
	var gotFilename, gotContentType string
	svc := &stubMediaService{
		getUploadURL: func(ctx context.Context, filename, contentType string) (*services.UploadResponse, error) {
			gotFilename, gotContentType = filename, contentType
			return &services.UploadResponse{
				UploadURL:  "https://bucket.s3.us-east-1.amazonaws.com/uploads/key.jpg?sig=abc",
				PictureURL: "https://bucket.s3.us-east-1.amazonaws.com/uploads/key.jpg",
				ExpiresIn:  300,
			}, nil
		},
	}
	router := newMediaRouter(svc)

	tests := []struct {
		name            string
		body            string
		wantStatus      int
		wantContentType string
	}{
		{
			name:            "valid request",
			body:            `{"filename": "sunset.jpg", "content_type": "image/png"}`,
			wantStatus:      http.StatusCreated,
			wantContentType: "image/png",
		},
		{
			name:            "content type defaulted",
			body:            `{"filename": "sunset.jpg"}`,
			wantStatus:      http.StatusCreated,
			wantContentType: "image/jpeg",
		},
		{
			name:       "missing filename",
			body:       `{"content_type": "image/png"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/uploads", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				if gotFilename != "sunset.jpg" {
					t.Errorf("filename = %q, want sunset.jpg", gotFilename)
				}
				if gotContentType != tt.wantContentType {
					t.Errorf("content type = %q, want %q", gotContentType, tt.wantContentType)
				}

				var resp services.UploadResponse
				if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.UploadURL == "" || resp.PictureURL == "" {
					t.Errorf("response = %+v, want upload_url and picture_url set", resp)
				}
				if resp.ExpiresIn != 300 {
					t.Errorf("expires_in = %d, want 300", resp.ExpiresIn)
				}
			} else {
				var body ErrorResponse
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if body.Error == "" {
					t.Error("expected a non-empty error message")
				}
			}
		})
	}

	t.Run("service failure surfaces as 500", func(t *testing.T) {
		svc := &stubMediaService{
			getUploadURL: func(ctx context.Context, filename, contentType string) (*services.UploadResponse, error) {
				return nil, errors.New("failed to generate pre-signed URL")
			},
		}
		req := httptest.NewRequest("POST", "/api/uploads", bytes.NewBufferString(`{"filename": "sunset.jpg"}`))
		rr := httptest.NewRecorder()
		newMediaRouter(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rr.Code)
		}
		var body ErrorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if body.Error != "failed to generate pre-signed URL" {
			t.Errorf("error = %q, want the underlying message", body.Error)
		}
	})
}
