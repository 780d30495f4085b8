package ledger

import (
	"context"
	"sync"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/notify"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/persistence"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/domain/usecase/auth"
)

// LedgerUseCase handles per-user transaction operations and the derived
// ledger view
type LedgerUseCase struct {
	transactionRepo persistence.TransactionRepository
	feed            notify.LedgerFeed
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	transactionRepo persistence.TransactionRepository,
	feed notify.LedgerFeed,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		feed:            feed,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// AddTransaction records an income or expense for the session's user.
// Validation happens before any store round-trip.
func (u *LedgerUseCase) AddTransaction(ctx context.Context, sess *usecase.SessionContext, text, amount string) (*entity.Transaction, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(sess.UserID, text, amount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	u.logger.Info("Transaction recorded", map[string]any{
		"user_id":        sess.UserID,
		"transaction_id": transaction.ID,
		"amount":         entity.CentsToDisplay(transaction.AmountInCents),
	})

	u.feed.Publish(sess.UserID)
	return transaction, nil
}

// DeleteTransaction removes one of the session user's own transactions
func (u *LedgerUseCase) DeleteTransaction(ctx context.Context, sess *usecase.SessionContext, transactionID uint64) error {
	if err := auth.RequireSession(sess); err != nil {
		return err
	}

	if err := u.transactionRepo.Delete(ctx, sess.UserID, transactionID); err != nil {
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"user_id":        sess.UserID,
		"transaction_id": transactionID,
	})

	u.feed.Publish(sess.UserID)
	return nil
}

// View recomputes the session user's ledger view from the full transaction
// set, newest first
func (u *LedgerUseCase) View(ctx context.Context, sess *usecase.SessionContext) (*entity.LedgerView, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	transactions, err := u.transactionRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	return entity.BuildLedgerView(transactions), nil
}

// Watch streams ledger views for the session's user: the current view
// immediately, then a fresh recomputation on every change signal
func (u *LedgerUseCase) Watch(ctx context.Context, sess *usecase.SessionContext) (<-chan *entity.LedgerView, func(), error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, nil, err
	}

	ticks, cancelSub := u.feed.Subscribe(ctx, sess.UserID)

	out := make(chan *entity.LedgerView, 1)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelSub()
			close(done)
		})
	}

	go func() {
		defer close(out)

		if !u.pushView(ctx, sess, out, done) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case _, ok := <-ticks:
				if !ok {
					return
				}
				if !u.pushView(ctx, sess, out, done) {
					return
				}
			}
		}
	}()

	return out, cancel, nil
}

// pushView recomputes the view and delivers it; returns false when the
// stream should end
func (u *LedgerUseCase) pushView(ctx context.Context, sess *usecase.SessionContext, out chan<- *entity.LedgerView, done <-chan struct{}) bool {
	view, err := u.View(ctx, sess)
	if err != nil {
		u.logger.Error("Failed to recompute ledger view for stream", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return false
	}

	select {
	case out <- view:
		return true
	case <-ctx.Done():
		return false
	case <-done:
		return false
	}
}
