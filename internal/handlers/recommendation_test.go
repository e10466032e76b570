package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"curation-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

type stubRecommendationService struct {
	create func(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error)
	list   func(ctx context.Context) ([]*models.Recommendation, error)
}

func (s *stubRecommendationService) CreateRecommendation(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	return s.create(ctx, rec)
}

func (s *stubRecommendationService) ListRecommendations(ctx context.Context) ([]*models.Recommendation, error) {
	return s.list(ctx)
}

func newRecommendationRouter(svc RecommendationService) *chi.Mux {
	h := NewRecommendationHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/recommendations", h.ListRecommendations)
	r.Post("/api/recommendations", h.CreateRecommendation)
	return r
}

func TestCreateRecommendationHandler(t *testing.T) {
	svc := &stubRecommendationService{
		create: func(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
			rec.ID = 10
			return rec, nil
		},
	}
	router := newRecommendationRouter(svc)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       `{"user_id": 7, "title": "Tiny ramen bar", "category": "food", "pictures": ["https://cdn/p.jpg"]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"user_id": 7}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing user_id",
			body:       `{"title": "Tiny ramen bar"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/recommendations", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				var created models.Recommendation
				if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if created.ID != 10 || created.UserID != 7 {
					t.Errorf("id/user_id = %d/%d, want 10/7", created.ID, created.UserID)
				}
			}
		})
	}
}

func TestListRecommendationsHandler(t *testing.T) {
	svc := &stubRecommendationService{
		list: func(ctx context.Context) ([]*models.Recommendation, error) {
			return []*models.Recommendation{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, nil
		},
	}
	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	rr := httptest.NewRecorder()
	newRecommendationRouter(svc).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var recs []*models.Recommendation
	if err := json.Unmarshal(rr.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("rows = %d, want 2", len(recs))
	}
}
