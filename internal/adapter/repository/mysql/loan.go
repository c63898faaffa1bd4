package mysql

import (
	"context"
	"errors"

	loanDomain "loan-ledger/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) UpdateDecision(ctx context.Context, id uint64, d loanDomain.Decision) error {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     d.Status,
			"decided_by": d.DecidedBy,
			"decided_at": d.DecidedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListAllWithApplicant(ctx context.Context) ([]loanDomain.WithApplicant, error) {
	var out []loanDomain.WithApplicant
	// LEFT JOIN so a loan with an unresolvable owner still lists, with nil
	// applicant fields.
	res := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.*, users.name AS applicant_name, users.email AS applicant_email").
		Joins("LEFT JOIN users ON users.id = loans.user_id").
		Order("loans.created_at DESC, loans.id DESC").
		Scan(&out)
	return out, res.Error
}
