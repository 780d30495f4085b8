package usecase

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// Landing identifies which view a fresh login routes to
type Landing string

// Landing destinations
const (
	LandingUser  Landing = "user"
	LandingAdmin Landing = "admin"
)

// SessionContext is the explicit per-request session object handed to every
// use case in place of ambient global state. It carries the authenticated
// identity and its stored role as resolved at request time.
type SessionContext struct {
	UserID uint64
	Email  string
	Role   entity.Role
}

// Session is the result of a successful signup or login
type Session struct {
	Token   string       `json:"token"`
	Landing Landing      `json:"landing"`
	User    *entity.User `json:"-"`
}

// AuthUseCase defines identity operations: account lifecycle, credential
// verification, session tokens, and password reset
type AuthUseCase interface {
	// SignUp creates an account with role forced to `user` and opens a session
	SignUp(ctx context.Context, name, email, password string) (*Session, error)

	// LogIn verifies credentials and opens a session. The landing destination
	// follows the stored role: admins route to the admin view, everyone else
	// to the user view. An absent profile row counts as non-admin.
	LogIn(ctx context.Context, email, password string) (*Session, error)

	// Authenticate verifies a session token and resolves the identity's stored
	// role into a SessionContext. Used by the request middleware.
	Authenticate(ctx context.Context, token string) (*SessionContext, error)

	// Profile returns the user's stored profile. An absent profile is reported
	// as ErrUserNotFound; callers decide whether to proceed with defaults.
	Profile(ctx context.Context, userID uint64) (*entity.User, error)

	// RequestPasswordReset dispatches a reset token to the given address.
	// An unknown address is not an error, to avoid leaking account existence.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset verifies a reset token and replaces the credential
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
