package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-friendly shadow schema for tests: no ENUM, no MySQL collations.
// The repositories under test still speak through the domain models.

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsAdmin      bool      `gorm:"column:is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userSQLite) TableName() string { return "users" }

type loanSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	UserID     uint64     `gorm:"column:user_id"`
	Amount     float64    `gorm:"column:amount"`
	TermMonths int        `gorm:"column:term_months"`
	Status     string     `gorm:"type:text;column:status"`
	DecidedBy  *uint64    `gorm:"column:decided_by"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID     uint64    `gorm:"primaryKey;column:id"`
	LoanID uint64    `gorm:"column:loan_id"`
	Amount float64   `gorm:"column:amount"`
	PaidAt time.Time `gorm:"column:paid_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

// openTestDB creates an in-memory sqlite DB and migrates the shadow schema.
// TranslateError matches the production gorm config so uniqueness violations
// surface as gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &loanSQLite{}, &repaymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
