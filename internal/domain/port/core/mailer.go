package core

import "context"

// Mailer dispatches out-of-band messages to account holders
type Mailer interface {
	// SendPasswordReset delivers a password-reset token to the given address
	SendPasswordReset(ctx context.Context, email, token string) error
}
