package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	domain "loan-ledger/internal/domain/auth"
	"loan-ledger/internal/domain/user"
)

// Usecase is the registration/credential service and the identity resolver.
type Usecase struct {
	users user.Repository
	log   *logrus.Logger
}

func NewUsecase(users user.Repository, log *logrus.Logger) *Usecase {
	return &Usecase{users: users, log: log}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisteredDTO, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, user.ErrMissingFields
	}
	// exact-match pre-check; the store's unique index is the backstop
	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrDuplicateEmail
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	rec := &user.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)}
	if err := u.users.Create(ctx, rec); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"user_id": rec.ID, "email": rec.Email}).Info("user registered")
	return &RegisteredDTO{ID: rec.ID, Name: rec.Name, Email: rec.Email}, nil
}

// Login verifies the submitted secret against the stored bcrypt hash. An
// unknown email and a wrong password fail identically so neither leaks.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*UserDTO, error) {
	if in.Email == "" || in.Password == "" {
		return nil, user.ErrMissingCredentials
	}
	rec, err := u.users.GetByEmail(ctx, in.Email)
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}
	return &UserDTO{ID: rec.ID, Name: rec.Name, Email: rec.Email, IsAdmin: rec.IsAdmin}, nil
}

// Resolve implements domain auth.Resolver over the user repository. The raw
// id and admin flag come straight off request headers and are trusted as-is.
// An absent, malformed or unknown id yields an unresolved principal, not an
// error.
func (u *Usecase) Resolve(ctx context.Context, rawUserID string, adminAsserted bool) (domain.Principal, error) {
	p := domain.Principal{AdminAsserted: adminAsserted}
	if rawUserID == "" {
		return p, nil
	}
	id, err := strconv.ParseUint(rawUserID, 10, 64)
	if err != nil {
		return p, nil
	}
	rec, err := u.users.GetByID(ctx, id)
	if errors.Is(err, user.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return domain.Principal{}, err
	}
	p.User = rec
	return p, nil
}
