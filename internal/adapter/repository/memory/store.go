// Package memory is the transient fallback backend, selected at startup when
// MySQL is unreachable. It mirrors the mysql adapter's observable behavior
// exactly; all state is process-local and lost on restart.
package memory

import (
	"sync"
	"sync/atomic"

	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/repayment"
	"loan-ledger/internal/domain/user"
)

// Store holds all three record kinds behind one lock. Ids come from per-kind
// atomic counters, so they start at 1, increase monotonically and are never
// reused even under concurrent writers.
type Store struct {
	mu         sync.RWMutex
	users      []user.User
	loans      []loan.Loan
	repayments []repayment.Repayment

	userSeq      atomic.Uint64
	loanSeq      atomic.Uint64
	repaymentSeq atomic.Uint64
}

func NewStore() *Store { return &Store{} }
