package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	// ListByLoan returns the loan's ledger, most recently paid first.
	ListByLoan(ctx context.Context, loanID uint64) ([]Repayment, error)
}
