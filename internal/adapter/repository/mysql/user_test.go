package mysql

import (
	"context"
	"errors"
	"testing"

	"loan-ledger/internal/domain/user"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &user.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("id not assigned")
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "a@x.com" {
		t.Fatalf("email = %s", byID.Email)
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Fatalf("id = %d, want %d", byEmail.ID, u.ID)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &user.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &user.User{Name: "B", Email: "a@x.com", PasswordHash: "h2"})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserLookup_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 404); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("GetByID err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "ghost@x.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("GetByEmail err = %v, want ErrNotFound", err)
	}
}
