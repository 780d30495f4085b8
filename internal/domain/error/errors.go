package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeEmptyText           = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidRole         = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeDuplicateEmail      = 4009
	CodeInvalidCredentials  = 4010
	CodeUnauthenticated     = 4011
	CodeInvalidToken        = 4012
	CodeTokenExpired        = 4013
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when the transaction amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrEmptyText is returned when the transaction text is empty after trimming
	ErrEmptyText = errors.New("transaction text cannot be empty")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidName is returned when the display name is empty after trimming
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword is returned when the password is empty or too short
	ErrInvalidPassword = errors.New("password does not meet requirements")

	// ErrInvalidRole is returned when the role is not one of the allowed values
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials is returned when email/password verification fails
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned when signing up with an email that is taken
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrUnauthenticated is returned when no valid session is present
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when a non-admin attempts an admin operation
	ErrForbidden = errors.New("admin access required")

	// ErrInvalidToken is returned when a session or reset token fails verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a session or reset token has expired
	ErrTokenExpired = errors.New("token has expired")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrEmptyText):
		return CodeEmptyText
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// AuthError represents an error raised during authentication or account operations
type AuthError struct {
	Email     string
	Operation string
	Err       error
}

// Error implements the error interface for AuthError
func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error during %s for %s: %v", e.Operation, e.Email, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "auth_error",
		"email":      e.Email,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAuthError creates a detailed authentication error
func NewAuthError(email, operation string, err error) error {
	return &AuthError{
		Email:     email,
		Operation: operation,
		Err:       err,
	}
}

// SweepError represents a failure while aggregating one user's transactions
// during the admin sweep. One failed fetch fails the whole sweep.
type SweepError struct {
	UserID uint64
	Email  string
	Err    error
}

// Error implements the error interface for SweepError
func (e *SweepError) Error() string {
	return fmt.Sprintf("sweep failed fetching transactions for user %d (%s): %v",
		e.UserID, e.Email, e.Err)
}

// Unwrap returns the underlying error
func (e *SweepError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SweepError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sweep_error",
		"user_id":    e.UserID,
		"email":      e.Email,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSweepError creates a detailed sweep error
func NewSweepError(userID uint64, email string, err error) error {
	return &SweepError{
		UserID: userID,
		Email:  email,
		Err:    err,
	}
}

// IsValidationError checks if the error is a local input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrInvalidRole)
}

// IsAuthenticationError checks if the error is an authentication failure
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}

// IsAuthorizationError checks if the error is an authorization failure
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateEmailError checks if the error is a duplicate email error
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}
