package loan

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"loan-ledger/internal/domain/auth"
	domain "loan-ledger/internal/domain/loan"
)

// MaxAmount is the hard cap on a single application.
const MaxAmount = 1_000_000

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Usecase owns the loan state machine: pending on submit, approved or
// rejected on an admin decision. A decision can be re-issued; the latest
// write wins.
type Usecase struct {
	repo domain.Repository
	log  *logrus.Logger
}

func NewUsecase(repo domain.Repository, log *logrus.Logger) *Usecase {
	return &Usecase{repo: repo, log: log}
}

// Submit requires a bound user; an admin assertion alone cannot apply.
func (u *Usecase) Submit(ctx context.Context, p auth.Principal, in SubmitInput) (*LoanDTO, error) {
	if !p.Resolved() {
		return nil, auth.ErrUnauthenticated
	}
	if in.Amount <= 0 || in.Amount > MaxAmount {
		return nil, domain.ErrInvalidAmount
	}
	if in.TermMonths <= 0 {
		return nil, domain.ErrInvalidTerm
	}
	l := &domain.Loan{
		UserID:     p.User.ID,
		Amount:     in.Amount,
		TermMonths: in.TermMonths,
		Status:     domain.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"loan_id": l.ID, "user_id": l.UserID, "amount": l.Amount}).
		Info("loan submitted")
	return &LoanDTO{ID: l.ID, Status: string(l.Status)}, nil
}

// Decide approves or rejects a loan. The admin gate comes first, then the
// action, then the loan lookup, so a non-admin learns nothing about which
// loans exist.
func (u *Usecase) Decide(ctx context.Context, p auth.Principal, loanID uint64, action string) (*LoanDTO, error) {
	if !p.IsAdmin() {
		return nil, auth.ErrForbidden
	}
	var status domain.Status
	switch action {
	case ActionApprove:
		status = domain.StatusApproved
	case ActionReject:
		status = domain.StatusRejected
	default:
		return nil, domain.ErrInvalidAction
	}
	// header-asserted admins have no bound user to attribute the decision to
	var decidedBy *uint64
	if !p.AdminAsserted && p.Resolved() {
		decidedBy = &p.User.ID
	}
	d := domain.Decision{Status: status, DecidedBy: decidedBy, DecidedAt: time.Now().UTC()}
	if err := u.repo.UpdateDecision(ctx, loanID, d); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"loan_id": loanID, "status": status}).Info("loan decided")
	return &LoanDTO{ID: loanID, Status: string(status)}, nil
}

// List returns every loan with applicant info for admins, or the caller's
// own loans otherwise, newest first either way.
func (u *Usecase) List(ctx context.Context, p auth.Principal) ([]domain.WithApplicant, error) {
	if !p.Resolved() && !p.AdminAsserted {
		return nil, auth.ErrUnauthenticated
	}
	if p.IsAdmin() {
		all, err := u.repo.ListAllWithApplicant(ctx)
		if err != nil {
			return nil, err
		}
		if all == nil {
			all = []domain.WithApplicant{}
		}
		return all, nil
	}
	own, err := u.repo.ListByUser(ctx, p.User.ID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WithApplicant, 0, len(own))
	for _, l := range own {
		out = append(out, domain.WithApplicant{Loan: l})
	}
	return out, nil
}
