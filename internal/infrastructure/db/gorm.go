package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/repayment"
	"loan-ledger/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can inject a mocked connection.
// TranslateError is on so repositories see gorm.ErrDuplicatedKey instead of
// driver-specific errors. Automatic ping is off; the single connectivity
// check happens below, after the pool is configured.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate ensures the three tables exist: users, loans (FK to users) and
// repayments (FK to loans).
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&user.User{}, &loan.Loan{}, &repayment.Repayment{})
}
