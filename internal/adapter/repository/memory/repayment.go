package memory

import (
	"context"
	"sort"
	"time"

	"loan-ledger/internal/domain/repayment"
)

type RepaymentRepository struct{ s *Store }

func NewRepaymentRepository(s *Store) *RepaymentRepository {
	return &RepaymentRepository{s: s}
}

func (r *RepaymentRepository) Create(_ context.Context, p *repayment.Repayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.repaymentSeq.Add(1)
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now().UTC()
	}
	r.s.repayments = append(r.s.repayments, *p)
	return nil
}

func (r *RepaymentRepository) ListByLoan(_ context.Context, loanID uint64) ([]repayment.Repayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]repayment.Repayment, 0)
	for i := range r.s.repayments {
		if r.s.repayments[i].LoanID == loanID {
			out = append(out, r.s.repayments[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaidAt.Equal(out[j].PaidAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].PaidAt.After(out[j].PaidAt)
	})
	return out, nil
}
