package loan

import (
	"errors"
	"time"

	"loan-ledger/internal/domain/user"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("invalid loan amount")
	ErrInvalidTerm   = errors.New("invalid loan term")
	ErrInvalidAction = errors.New("invalid action")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Loan is one application and its decision. DecidedAt is non-nil iff a
// decision has been recorded; DecidedBy stays nil when the decision came
// from a header-asserted admin with no bound user.
type Loan struct {
	ID         uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID     uint64     `gorm:"not null;index:idx_loans_user" json:"user_id"`
	Amount     float64    `gorm:"type:decimal(12,2);not null" json:"amount"`
	TermMonths int        `gorm:"not null" json:"term_months"`
	Status     Status     `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	DecidedBy  *uint64    `gorm:"column:decided_by" json:"decided_by"`
	DecidedAt  *time.Time `gorm:"column:decided_at" json:"decided_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Applicant *user.User `gorm:"foreignKey:UserID" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// WithApplicant decorates a loan with its owner's display fields for
// administrative listings. The pointers stay nil (and the keys absent on the
// wire) when the owner cannot be resolved or the listing is owner-scoped.
type WithApplicant struct {
	Loan           `gorm:"embedded"`
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
}
