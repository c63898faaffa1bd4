package loanmock

import (
	"context"

	domain "loan-ledger/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository. Unset
// lookups report not-found; unset writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Loan, error)
	UpdateDecisionFn       func(ctx context.Context, id uint64, d domain.Decision) error
	ListByUserFn           func(ctx context.Context, userID uint64) ([]domain.Loan, error)
	ListAllWithApplicantFn func(ctx context.Context) ([]domain.WithApplicant, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpdateDecision(ctx context.Context, id uint64, d domain.Decision) error {
	if m.UpdateDecisionFn != nil {
		return m.UpdateDecisionFn(ctx, id, d)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Loan, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListAllWithApplicant(ctx context.Context) ([]domain.WithApplicant, error) {
	if m.ListAllWithApplicantFn != nil {
		return m.ListAllWithApplicantFn(ctx)
	}
	return nil, nil
}
