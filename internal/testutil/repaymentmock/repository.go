package repaymentmock

import (
	"context"

	domain "loan-ledger/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies repayment.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, r *domain.Repayment) error
	ListByLoanFn func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}
