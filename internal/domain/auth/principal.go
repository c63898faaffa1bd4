package auth

import (
	"context"
	"errors"

	"loan-ledger/internal/domain/user"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not authorized")
)

// Principal is the identity behind a request. It may carry a bound user, an
// unverified admin assertion, both, or neither; the two signals are
// independent.
type Principal struct {
	User          *user.User
	AdminAsserted bool
}

// Resolved reports whether the principal is bound to a user record. An admin
// assertion alone does not count.
func (p Principal) Resolved() bool { return p.User != nil }

func (p Principal) IsAdmin() bool {
	return p.AdminAsserted || (p.User != nil && p.User.IsAdmin)
}

// Resolver turns a caller-supplied identity assertion into a Principal.
// The current implementation trusts headers outright; a signed-token scheme
// can replace it without touching the engines.
type Resolver interface {
	Resolve(ctx context.Context, rawUserID string, adminAsserted bool) (Principal, error)
}
