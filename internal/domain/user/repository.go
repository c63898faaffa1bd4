package user

import "context"

type Repository interface {
	// Create assigns the id; backends must fail with ErrDuplicateEmail on
	// email reuse.
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
