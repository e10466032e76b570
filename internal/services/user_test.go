package services

import (
	"context"
	"testing"

	"curation-backend/internal/models"
)

func TestCreateUserAfterLazyCreation(t *testing.T) {
	userStore := newFakeUserStore()
	svc := NewUserService(userStore)

	// A collection request lazily claims id 7. The next server-generated id
	// must land past it, not collide with it.
	if err := ensureUser(context.Background(), userStore, 7, "", ""); err != nil {
		t.Fatalf("ensureUser: %v", err)
	}

	created, err := svc.CreateUser(context.Background(), &models.User{Fname: "Grace"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID != 8 {
		t.Errorf("id = %d, want 8", created.ID)
	}
	if len(userStore.users) != 2 {
		t.Errorf("user rows = %d, want 2", len(userStore.users))
	}
}

func TestListUsers(t *testing.T) {
	userStore := newFakeUserStore(1, 2, 3)
	svc := NewUserService(userStore)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("rows = %d, want 3", len(users))
	}
}
