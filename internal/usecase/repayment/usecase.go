package repayment

import (
	"context"

	"github.com/sirupsen/logrus"

	"loan-ledger/internal/domain/auth"
	loanDomain "loan-ledger/internal/domain/loan"
	domain "loan-ledger/internal/domain/repayment"
)

// Usecase is the ledger engine: it appends repayments against a loan and
// gates writes on ownership or admin rights.
type Usecase struct {
	repo  domain.Repository
	loans loanDomain.Repository
	log   *logrus.Logger
}

func NewUsecase(repo domain.Repository, loans loanDomain.Repository, log *logrus.Logger) *Usecase {
	return &Usecase{repo: repo, loans: loans, log: log}
}

// Record appends a ledger entry. Order of failure checks mirrors the write
// path contract: authentication, amount, loan existence, then ownership.
func (u *Usecase) Record(ctx context.Context, p auth.Principal, loanID uint64, in RecordInput) (*RepaymentDTO, error) {
	if !p.Resolved() {
		return nil, auth.ErrUnauthenticated
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.UserID != p.User.ID && !p.User.IsAdmin {
		return nil, auth.ErrForbidden
	}
	rec := &domain.Repayment{LoanID: loanID, Amount: in.Amount}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"repayment_id": rec.ID, "loan_id": loanID, "amount": rec.Amount}).
		Info("repayment recorded")
	return &RepaymentDTO{ID: rec.ID, LoanID: rec.LoanID, Amount: rec.Amount}, nil
}

// List returns the loan's ledger newest first. Reads are not ownership-scoped:
// any authenticated principal may read any loan's ledger.
func (u *Usecase) List(ctx context.Context, p auth.Principal, loanID uint64) ([]domain.Repayment, error) {
	if !p.Resolved() {
		return nil, auth.ErrUnauthenticated
	}
	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	out, err := u.repo.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Repayment{}
	}
	return out, nil
}
