package memory

import (
	"context"
	"time"

	"loan-ledger/internal/domain/loan"
)

type LoanRepository struct{ s *Store }

func NewLoanRepository(s *Store) *LoanRepository { return &LoanRepository{s: s} }

func (r *LoanRepository) Create(_ context.Context, l *loan.Loan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.loanSeq.Add(1)
	if l.Status == "" {
		l.Status = loan.StatusPending
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.s.loans = append(r.s.loans, *l)
	return nil
}

func (r *LoanRepository) GetByID(_ context.Context, id uint64) (*loan.Loan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.loans {
		if r.s.loans[i].ID == id {
			out := r.s.loans[i]
			return &out, nil
		}
	}
	return nil, loan.ErrNotFound
}

func (r *LoanRepository) UpdateDecision(_ context.Context, id uint64, d loan.Decision) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.loans {
		if r.s.loans[i].ID == id {
			decidedAt := d.DecidedAt
			r.s.loans[i].Status = d.Status
			r.s.loans[i].DecidedBy = d.DecidedBy
			r.s.loans[i].DecidedAt = &decidedAt
			return nil
		}
	}
	return loan.ErrNotFound
}

func (r *LoanRepository) ListByUser(_ context.Context, userID uint64) ([]loan.Loan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]loan.Loan, 0)
	// ids follow creation order, so walking backwards yields newest first
	for i := len(r.s.loans) - 1; i >= 0; i-- {
		if r.s.loans[i].UserID == userID {
			out = append(out, r.s.loans[i])
		}
	}
	return out, nil
}

func (r *LoanRepository) ListAllWithApplicant(_ context.Context) ([]loan.WithApplicant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byID := make(map[uint64]int, len(r.s.users))
	for i := range r.s.users {
		byID[r.s.users[i].ID] = i
	}
	out := make([]loan.WithApplicant, 0, len(r.s.loans))
	for i := len(r.s.loans) - 1; i >= 0; i-- {
		row := loan.WithApplicant{Loan: r.s.loans[i]}
		if j, ok := byID[r.s.loans[i].UserID]; ok {
			name, email := r.s.users[j].Name, r.s.users[j].Email
			row.ApplicantName = &name
			row.ApplicantEmail = &email
		}
		out = append(out, row)
	}
	return out, nil
}
