package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/persistence"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 6

// AuthUseCase handles account lifecycle, credential verification, session
// tokens, and password reset
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenManager
	mailer       coreport.Mailer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenManager,
	mailer coreport.Mailer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		mailer:       mailer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SignUp creates an account with role forced to `user` and opens a session
func (u *AuthUseCase) SignUp(ctx context.Context, name, email, password string) (*usecase.Session, error) {
	if len(password) < minPasswordLength {
		return nil, errs.ErrInvalidPassword
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(name, email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			return nil, errs.NewAuthError(email, "signup", errs.ErrDuplicateEmail)
		}
		return nil, err
	}

	u.logger.Info("Account created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return u.openSession(user)
}

// LogIn verifies credentials and opens a session routed by the stored role
func (u *AuthUseCase) LogIn(ctx context.Context, email, password string) (*usecase.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Same answer as a bad password so account existence stays private
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash(), password); err != nil {
		u.logger.Warn("Credential verification failed", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	u.logger.Info("Login succeeded", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})

	return u.openSession(user)
}

// Authenticate verifies a session token and resolves the identity's stored
// role into a SessionContext. An absent profile row counts as non-admin
// rather than failing the request.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*usecase.SessionContext, error) {
	claims, err := u.tokens.VerifySession(token)
	if err != nil {
		return nil, err
	}

	role := entity.RoleUser
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	switch {
	case err == nil:
		role = user.Role
	case errors.Is(err, errs.ErrUserNotFound):
		u.logger.Warn("Session for absent profile, defaulting to user role", map[string]any{
			"user_id": claims.UserID,
		})
	default:
		return nil, err
	}

	return &usecase.SessionContext{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

// Profile returns the user's stored profile
func (u *AuthUseCase) Profile(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// RequestPasswordReset dispatches a reset token to the given address.
// An unknown address is answered the same as a known one.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Info("Password reset requested for unknown address", map[string]any{
				"email": email,
			})
			return nil
		}
		return err
	}

	token, err := u.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		u.logger.Error("Failed to issue reset token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return errs.ErrInternalServer
	}

	if err := u.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		u.logger.Error("Failed to dispatch reset mail", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return errs.ErrInternalServer
	}

	u.logger.Info("Password reset dispatched", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// ConfirmPasswordReset verifies a reset token and replaces the credential
func (u *AuthUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	claims, err := u.tokens.VerifyReset(token)
	if err != nil {
		return err
	}

	if len(newPassword) < minPasswordLength {
		return errs.ErrInvalidPassword
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return errs.ErrInternalServer
	}

	user.SetPasswordHash(hash, u.timeProvider)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	u.logger.Info("Password reset completed", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// openSession issues a session token for the user and routes by role
func (u *AuthUseCase) openSession(user *entity.User) (*usecase.Session, error) {
	token, err := u.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		u.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.Session{
		Token:   token,
		Landing: LandingFor(user.Role),
		User:    user,
	}, nil
}
