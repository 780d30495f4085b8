package usecase

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// LedgerUseCase defines the per-user transaction operations and the derived
// ledger view
type LedgerUseCase interface {
	// AddTransaction records an income or expense for the session's user.
	// Validation (non-empty text, parseable signed amount) happens before any
	// store round-trip. On success the user's feed is notified.
	AddTransaction(ctx context.Context, sess *SessionContext, text, amount string) (*entity.Transaction, error)

	// DeleteTransaction removes one of the session user's own transactions.
	// On success the user's feed is notified.
	DeleteTransaction(ctx context.Context, sess *SessionContext, transactionID uint64) error

	// View recomputes the session user's ledger view from the full
	// transaction set, newest first
	View(ctx context.Context, sess *SessionContext) (*entity.LedgerView, error)

	// Watch streams ledger views for the session's user: the current view is
	// delivered immediately, then a fresh one on every change to the
	// underlying transaction set. The cancel function ends the stream; it is
	// also ended when ctx ends.
	Watch(ctx context.Context, sess *SessionContext) (<-chan *entity.LedgerView, func(), error)
}
