package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	coremocks "github.com/raghavmehta/expense-ledger/mocks/port/core"
	notifymocks "github.com/raghavmehta/expense-ledger/mocks/port/notify"
	persistencemocks "github.com/raghavmehta/expense-ledger/mocks/port/persistence"
)

type ledgerMocks struct {
	transactionRepo *persistencemocks.MockTransactionRepository
	feed            *notifymocks.MockLedgerFeed
	time            *coremocks.MockTimeProvider
	logger          *coremocks.MockLogger
}

func newLedgerUseCase(t *testing.T) (*LedgerUseCase, *ledgerMocks) {
	m := &ledgerMocks{
		transactionRepo: persistencemocks.NewMockTransactionRepository(t),
		feed:            notifymocks.NewMockLedgerFeed(t),
		time:            coremocks.NewMockTimeProvider(t),
		logger:          coremocks.NewMockLogger(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc := NewLedgerUseCase(m.transactionRepo, m.feed, m.time, m.logger)
	return uc, m
}

func userSession() *usecase.SessionContext {
	return &usecase.SessionContext{UserID: 42, Email: "alice@example.com", Role: entity.RoleUser}
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful add notifies the feed", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.transactionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 42 && tx.Text == "Coffee" && tx.AmountInCents == -5000
		})).Run(func(ctx context.Context, tx *entity.Transaction) {
			tx.ID = 9
		}).Return(nil).Once()
		m.feed.EXPECT().Publish(uint64(42)).Once()

		transaction, err := uc.AddTransaction(ctx, userSession(), "Coffee", "-50")

		require.NoError(t, err)
		assert.Equal(t, uint64(9), transaction.ID)
		assert.True(t, transaction.IsExpense())
	})

	t.Run("No session", func(t *testing.T) {
		uc, _ := newLedgerUseCase(t)

		transaction, err := uc.AddTransaction(ctx, nil, "Coffee", "-50")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Validation happens before any store round-trip", func(t *testing.T) {
		uc, _ := newLedgerUseCase(t)

		transaction, err := uc.AddTransaction(ctx, userSession(), "   ", "-50")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrEmptyText)
	})

	t.Run("Store failure does not notify the feed", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.transactionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		transaction, err := uc.AddTransaction(ctx, userSession(), "Coffee", "-50")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete notifies the feed", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		m.transactionRepo.EXPECT().Delete(mock.Anything, uint64(42), uint64(9)).Return(nil).Once()
		m.feed.EXPECT().Publish(uint64(42)).Once()

		err := uc.DeleteTransaction(ctx, userSession(), 9)

		assert.NoError(t, err)
	})

	t.Run("Missing or foreign transaction", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		m.transactionRepo.EXPECT().Delete(mock.Anything, uint64(42), uint64(9)).Return(errs.ErrTransactionNotFound).Once()

		err := uc.DeleteTransaction(ctx, userSession(), 9)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("No session", func(t *testing.T) {
		uc, _ := newLedgerUseCase(t)

		err := uc.DeleteTransaction(ctx, nil, 9)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestView(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Recomputes the view from the full set", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		transactions := []*entity.Transaction{
			{ID: 2, UserID: 42, Text: "Coffee", AmountInCents: -5000, CreatedAt: createdAt.Add(time.Hour)},
			{ID: 1, UserID: 42, Text: "Salary", AmountInCents: 150000, CreatedAt: createdAt},
		}
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(transactions, nil).Once()

		view, err := uc.View(ctx, userSession())

		require.NoError(t, err)
		assert.Equal(t, "1450.00", view.Balance)
		assert.Equal(t, "1500.00", view.Income)
		assert.Equal(t, "50.00", view.Expense)
		assert.Len(t, view.Entries, 2)
	})

	t.Run("No session", func(t *testing.T) {
		uc, _ := newLedgerUseCase(t)

		view, err := uc.View(ctx, nil)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestWatch(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Delivers the current view, then one per change", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		ctx, cancelCtx := context.WithCancel(context.Background())
		defer cancelCtx()

		ticks := make(chan struct{}, 1)
		m.feed.EXPECT().Subscribe(mock.Anything, uint64(42)).Return(ticks, func() {}).Once()

		first := []*entity.Transaction{
			{ID: 1, UserID: 42, Text: "Salary", AmountInCents: 150000, CreatedAt: createdAt},
		}
		second := []*entity.Transaction{
			{ID: 2, UserID: 42, Text: "Coffee", AmountInCents: -5000, CreatedAt: createdAt.Add(time.Hour)},
			{ID: 1, UserID: 42, Text: "Salary", AmountInCents: 150000, CreatedAt: createdAt},
		}
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(first, nil).Once()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(second, nil).Once()

		views, cancel, err := uc.Watch(ctx, userSession())
		require.NoError(t, err)
		defer cancel()

		view := <-views
		require.NotNil(t, view)
		assert.Equal(t, "1500.00", view.Balance)

		ticks <- struct{}{}

		view = <-views
		require.NotNil(t, view)
		assert.Equal(t, "1450.00", view.Balance)
	})

	t.Run("Cancel ends the stream", func(t *testing.T) {
		uc, m := newLedgerUseCase(t)

		ctx := context.Background()
		ticks := make(chan struct{})
		m.feed.EXPECT().Subscribe(mock.Anything, uint64(42)).Return(ticks, func() {}).Once()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(nil, nil).Once()

		views, cancel, err := uc.Watch(ctx, userSession())
		require.NoError(t, err)

		<-views
		cancel()

		_, open := <-views
		assert.False(t, open)
	})

	t.Run("No session", func(t *testing.T) {
		uc, _ := newLedgerUseCase(t)

		views, cancel, err := uc.Watch(context.Background(), nil)

		assert.Nil(t, views)
		assert.Nil(t, cancel)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
