package services

import (
	"context"
	"testing"
	"time"

	"curation-backend/internal/models"
)

func TestCreateRecommendationLazyUser(t *testing.T) {
	userStore := newFakeUserStore()
	recStore := newFakeRecommendationStore()
	svc := NewRecommendationService(recStore, userStore)

	created, err := svc.CreateRecommendation(context.Background(), &models.Recommendation{
		UserID: 5,
		Title:  "A place worth visiting",
	})
	if err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated recommendation id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be filled in")
	}
	if created.Pictures == nil {
		t.Error("expected pictures to default to an empty slice")
	}

	user, ok := userStore.users[5]
	if !ok {
		t.Fatal("owning user was not lazily created")
	}
	if user.Fname != DefaultUserName || user.Email != DefaultUserEmail {
		t.Errorf("stub user = %q/%q, want defaults", user.Fname, user.Email)
	}
}

func TestCreateRecommendationExistingUser(t *testing.T) {
	userStore := newFakeUserStore(5)
	before := *userStore.users[5]
	svc := NewRecommendationService(newFakeRecommendationStore(), userStore)

	suppliedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	created, err := svc.CreateRecommendation(context.Background(), &models.Recommendation{
		UserID:    5,
		Title:     "Keeps its timestamp",
		CreatedAt: suppliedAt,
	})
	if err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}
	if !created.CreatedAt.Equal(suppliedAt) {
		t.Errorf("created_at = %v, want the caller-supplied %v", created.CreatedAt, suppliedAt)
	}
	if len(userStore.users) != 1 {
		t.Errorf("user rows = %d, want 1", len(userStore.users))
	}
	if userStore.users[5].Fname != before.Fname {
		t.Error("existing user row was modified")
	}
}

func TestListRecommendations(t *testing.T) {
	recStore := newFakeRecommendationStore(
		&models.Recommendation{ID: 1, UserID: 1, Title: "a"},
		&models.Recommendation{ID: 2, UserID: 2, Title: "b"},
	)
	svc := NewRecommendationService(recStore, newFakeUserStore(1, 2))

	recs, err := svc.ListRecommendations(context.Background())
	if err != nil {
		t.Fatalf("ListRecommendations: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("rows = %d, want 2", len(recs))
	}
}
