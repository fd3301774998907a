package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/userreport/userreport/internal/model"
)

func TestMemoryRepository_GetUserByID(t *testing.T) {
	t.Parallel()

	repo := NewMemory(DefaultUsers()...)

	user, err := repo.GetUserByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}

	want := &model.User{ID: 1, Name: "Alice"}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewMemory(DefaultUsers()...)

	user, err := repo.GetUserByID(context.Background(), 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemory(model.User{ID: 5, Name: "Carol"})

	first, err := repo.GetUserByID(ctx, 5)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	first.Name = "mutated"

	second, err := repo.GetUserByID(ctx, 5)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if second.Name != "Carol" {
		t.Errorf("stored user was mutated through a returned pointer: %q", second.Name)
	}
}

func TestMemoryRepository_CreateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemory()

	if err := repo.CreateUser(ctx, &model.User{ID: 10, Name: "Dave"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	err := repo.CreateUser(ctx, &model.User{ID: 10, Name: "Eve"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	user, err := repo.GetUserByID(ctx, 10)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Name != "Dave" {
		t.Errorf("name = %q, want %q", user.Name, "Dave")
	}
}

func TestMemoryRepository_ConcurrentReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemory(DefaultUsers()...)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.GetUserByID(ctx, 2); err != nil {
				t.Errorf("get user: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestDefaultUsers_ContainsAlice(t *testing.T) {
	t.Parallel()

	for _, u := range DefaultUsers() {
		if u.ID == 1 {
			if u.Name != "Alice" {
				t.Errorf("user 1 name = %q, want Alice", u.Name)
			}
			return
		}
	}
	t.Fatal("user 1 missing from default fixtures")
}
