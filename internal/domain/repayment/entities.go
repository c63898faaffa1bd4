package repayment

import (
	"errors"
	"time"

	"loan-ledger/internal/domain/loan"
)

var ErrInvalidAmount = errors.New("invalid repayment amount")

// Repayment is one append-only ledger entry against a loan. Entries are
// never mutated or deleted, and nothing ties their sum to the loan amount.
type Repayment struct {
	ID     uint64    `gorm:"primaryKey;column:id" json:"id"`
	LoanID uint64    `gorm:"not null;index:idx_repayments_loan" json:"loan_id"`
	Amount float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidAt time.Time `gorm:"autoCreateTime" json:"paid_at"`

	Loan *loan.Loan `gorm:"foreignKey:LoanID" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }
