package model

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which profile a user may hold and which
// consultation operations they may perform. Fixed at creation.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User status constants
const (
	UserStatusActive  = "active"
	UserStatusPending = "pending"
	UserStatusLocked  = "locked"
)

// User represents a registered account.
type User struct {
	Base
	Email            string    `json:"email" db:"email"`
	Name             string    `json:"name" db:"name"`
	Password         string    `json:"password,omitempty" db:"-"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Role             Role      `json:"role" db:"role"`
	Status           string    `json:"status" db:"status"`
	EmailVerified    bool      `json:"email_verified" db:"email_verified"`
	LoginAttempts    int       `json:"-" db:"login_attempts"`
	LastLoginAttempt time.Time `json:"-" db:"last_login_attempt"`
}

// Session is the authenticated context of one request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
