package loan

import (
	"context"
	"time"
)

// Decision is the one conceptual mutation a loan undergoes.
type Decision struct {
	Status    Status
	DecidedBy *uint64
	DecidedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// UpdateDecision fails with ErrNotFound when id matches no loan.
	UpdateDecision(ctx context.Context, id uint64, d Decision) error
	// ListByUser returns the user's loans, newest first.
	ListByUser(ctx context.Context, userID uint64) ([]Loan, error)
	// ListAllWithApplicant returns every loan joined with its owner's
	// name/email, newest first. A loan whose owner is missing keeps nil
	// applicant fields rather than failing the call.
	ListAllWithApplicant(ctx context.Context) ([]WithApplicant, error)
}
