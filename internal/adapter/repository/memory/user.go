package memory

import (
	"context"
	"time"

	"loan-ledger/internal/domain/user"
)

type UserRepository struct{ s *Store }

func NewUserRepository(s *Store) *UserRepository { return &UserRepository{s: s} }

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	u.ID = r.s.userSeq.Add(1)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uint64) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			out := r.s.users[i]
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			out := r.s.users[i]
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}
