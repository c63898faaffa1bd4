package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
)

// User is an applicant (or back-office admin) identity. The email is unique
// and compared byte-for-byte, hence the binary collation. The password hash
// never leaves the service.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
