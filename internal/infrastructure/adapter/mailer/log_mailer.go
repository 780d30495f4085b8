package mailer

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/port/core"
)

// LogMailer implements Mailer by writing the message to the application log.
// Suitable for development and test environments where no SMTP relay exists;
// the reset token shows up in the log instead of an inbox.
type LogMailer struct {
	logger core.Logger
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(logger core.Logger) core.Mailer {
	return &LogMailer{logger: logger}
}

// SendPasswordReset delivers a password-reset token to the given address
func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.logger.Info("Password reset mail", map[string]any{
		"to":    email,
		"token": token,
	})
	return nil
}
