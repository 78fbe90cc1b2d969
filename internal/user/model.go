package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
)

// Role determines what a user is allowed to do. Admins get the back-office.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered guest or a back-office admin.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Preferences  []string // free-text tags, e.g. "high floor", "late checkout"
	IsVIP        bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// FullName joins first and last name for display purposes.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Filter defines filter options for listing users.
type Filter struct {
	Email string
	Role  string
	IsVIP *bool // pointer to distinguish between false and not set

	Page     int
	PageSize int
}
