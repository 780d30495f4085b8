package core

// SessionClaims carries the verified identity of a session token
type SessionClaims struct {
	UserID uint64
	Email  string
}

// TokenManager issues and verifies the service's signed tokens.
// Session tokens authenticate API requests; reset tokens are single-purpose
// short-lived tokens dispatched for password recovery. The two kinds are not
// interchangeable: a reset token must never pass session verification.
type TokenManager interface {
	// IssueSession creates a signed session token for the given identity
	IssueSession(userID uint64, email string) (string, error)
	// VerifySession validates a session token and returns its claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, tampered with, or of the wrong kind
	// - ErrTokenExpired: If the token has expired
	VerifySession(token string) (*SessionClaims, error)
	// IssueReset creates a signed password-reset token for the given identity
	IssueReset(userID uint64, email string) (string, error)
	// VerifyReset validates a reset token and returns its claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, tampered with, or of the wrong kind
	// - ErrTokenExpired: If the token has expired
	VerifyReset(token string) (*SessionClaims, error)
}
