package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLedgerView(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Empty transaction set", func(t *testing.T) {
		view := BuildLedgerView(nil)

		assert.Equal(t, "0.00", view.Balance)
		assert.Equal(t, "0.00", view.Income)
		assert.Equal(t, "0.00", view.Expense)
		assert.NotNil(t, view.Entries)
		assert.Empty(t, view.Entries)
	})

	t.Run("Mixed income and expense", func(t *testing.T) {
		transactions := []*Transaction{
			{ID: 3, UserID: 1, Text: "Coffee", AmountInCents: -5000, CreatedAt: createdAt.Add(2 * time.Hour)},
			{ID: 2, UserID: 1, Text: "Book", AmountInCents: -1250, CreatedAt: createdAt.Add(time.Hour)},
			{ID: 1, UserID: 1, Text: "Salary", AmountInCents: 150000, CreatedAt: createdAt},
		}

		view := BuildLedgerView(transactions)

		assert.Equal(t, "1437.50", view.Balance)
		assert.Equal(t, "1500.00", view.Income)
		assert.Equal(t, "62.50", view.Expense)
		require.Len(t, view.Entries, 3)

		// Input order (newest first) is preserved
		assert.Equal(t, uint64(3), view.Entries[0].ID)
		assert.Equal(t, uint64(2), view.Entries[1].ID)
		assert.Equal(t, uint64(1), view.Entries[2].ID)
	})

	t.Run("Entry rendering", func(t *testing.T) {
		transactions := []*Transaction{
			{ID: 1, UserID: 1, Text: "Coffee", AmountInCents: -5000, CreatedAt: createdAt},
			{ID: 2, UserID: 1, Text: "Refund", AmountInCents: 1250, CreatedAt: createdAt},
		}

		view := BuildLedgerView(transactions)
		require.Len(t, view.Entries, 2)

		expense := view.Entries[0]
		assert.Equal(t, EntryExpense, expense.Kind)
		assert.Equal(t, "-₹50", expense.DisplayAmount)
		assert.Equal(t, "2023-01-01 12:00:00", expense.CreatedAt)

		income := view.Entries[1]
		assert.Equal(t, EntryIncome, income.Kind)
		assert.Equal(t, "+₹12.5", income.DisplayAmount)
	})

	t.Run("Zero amount counts toward balance only", func(t *testing.T) {
		transactions := []*Transaction{
			{ID: 1, UserID: 1, Text: "Salary", AmountInCents: 10000, CreatedAt: createdAt},
			{ID: 2, UserID: 1, Text: "Correction", AmountInCents: 0, CreatedAt: createdAt},
		}

		view := BuildLedgerView(transactions)

		assert.Equal(t, "100.00", view.Balance)
		assert.Equal(t, "100.00", view.Income)
		assert.Equal(t, "0.00", view.Expense)
		require.Len(t, view.Entries, 2)

		// A zero amount renders as income with a plus prefix
		assert.Equal(t, EntryIncome, view.Entries[1].Kind)
		assert.Equal(t, "+₹0", view.Entries[1].DisplayAmount)
	})

	t.Run("Uncommitted timestamp renders empty", func(t *testing.T) {
		transactions := []*Transaction{
			{ID: 1, UserID: 1, Text: "Pending", AmountInCents: 100},
		}

		view := BuildLedgerView(transactions)

		require.Len(t, view.Entries, 1)
		assert.Equal(t, "", view.Entries[0].CreatedAt)
	})
}
