package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
)

func TestSweepTransactions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	users := []*entity.User{
		entity.RehydrateUser(1, "Root", "root@example.com", "hash", entity.RoleAdmin, fixedTime, fixedTime),
		entity.RehydrateUser(2, "Alice", "alice@example.com", "hash", entity.RoleUser, fixedTime, fixedTime),
	}

	t.Run("Merges every user's entries annotated with the owner", func(t *testing.T) {
		uc, m := newAdminUseCase(t)

		rootTransactions := []*entity.Transaction{
			{ID: 1, UserID: 1, Text: "Salary", AmountInCents: 150000, CreatedAt: fixedTime},
		}
		aliceTransactions := []*entity.Transaction{
			{ID: 3, UserID: 2, Text: "Coffee", AmountInCents: -5000, CreatedAt: fixedTime.Add(time.Hour)},
			{ID: 2, UserID: 2, Text: "Book", AmountInCents: -1250, CreatedAt: fixedTime},
		}

		m.userRepo.EXPECT().ListAll(mock.Anything).Return(users, nil).Once()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(rootTransactions, nil).Once()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(2)).Return(aliceTransactions, nil).Once()

		entries, err := uc.SweepTransactions(ctx, adminSession())

		require.NoError(t, err)
		require.Len(t, entries, 3)

		// Per-user sub-sequences keep listing order and owner annotation
		assert.Equal(t, uint64(1), entries[0].OwnerID)
		assert.Equal(t, "root@example.com", entries[0].OwnerEmail)
		assert.Equal(t, uint64(3), entries[1].ID)
		assert.Equal(t, "alice@example.com", entries[1].OwnerEmail)
		assert.Equal(t, uint64(2), entries[2].ID)
	})

	t.Run("One failed fetch fails the whole sweep", func(t *testing.T) {
		uc, m := newAdminUseCase(t)

		m.userRepo.EXPECT().ListAll(mock.Anything).Return(users, nil).Once()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(nil, nil).Maybe()
		m.transactionRepo.EXPECT().ListByUser(mock.Anything, uint64(2)).Return(nil, errs.ErrDatabaseConnection).Once()

		entries, err := uc.SweepTransactions(ctx, adminSession())

		assert.Nil(t, entries)

		var sweepErr *errs.SweepError
		require.ErrorAs(t, err, &sweepErr)
		assert.Equal(t, uint64(2), sweepErr.UserID)
		assert.Equal(t, "alice@example.com", sweepErr.Email)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("No users means an empty feed", func(t *testing.T) {
		uc, m := newAdminUseCase(t)

		m.userRepo.EXPECT().ListAll(mock.Anything).Return(nil, nil).Once()

		entries, err := uc.SweepTransactions(ctx, adminSession())

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Non-admin is denied", func(t *testing.T) {
		uc, _ := newAdminUseCase(t)

		entries, err := uc.SweepTransactions(ctx, nonAdminSession())

		assert.Nil(t, entries)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
