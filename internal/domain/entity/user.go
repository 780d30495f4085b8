package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
)

// Role represents a user's access level
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the allowed values
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Toggled returns the opposite role, used by the admin role toggle
func (r Role) Toggled() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// User represents a user profile with credentials and a role
type User struct {
	ID           uint64    // Unique identifier for the user
	Name         string    // Display name
	Email        string    // Unique login email
	passwordHash string    // Hashed credential (private, never serialized)
	Role         Role      // Access level, defaults to RoleUser at signup
	CreatedAt    time.Time // When the profile was created (server-assigned)
	UpdatedAt    time.Time // When the profile was last updated
}

// NewUser creates a new user profile. Role is always forced to RoleUser;
// promotion happens only through an admin's role toggle.
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidName
	}

	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.ErrInvalidEmail
	}

	if passwordHash == "" {
		return nil, errs.ErrInvalidPassword
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        email,
		passwordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RehydrateUser rebuilds a user from stored fields without re-validating.
// Persistence adapters use this when mapping rows back to entities.
func RehydrateUser(id uint64, name, email, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		passwordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHash returns the stored credential hash (for internal use)
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// SetPasswordHash replaces the stored credential hash (for internal use,
// like repositories and password reset)
func (u *User) SetPasswordHash(hash string, timeProvider coreport.TimeProvider) {
	u.passwordHash = hash
	u.UpdatedAt = timeProvider.Now()
}

// SetRole updates the user's role. Only an admin-gated operation may call this.
func (u *User) SetRole(role Role, timeProvider coreport.TimeProvider) error {
	if !role.IsValid() {
		return errs.ErrInvalidRole
	}
	u.Role = role
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
