package entity

import "time"

// CurrencySymbol prefixes every rendered amount
const CurrencySymbol = "₹"

// entryTimeLayout is the display format for committed timestamps
const entryTimeLayout = "2006-01-02 15:04:05"

// EntryKind tags a rendered entry by the sign of its amount
type EntryKind string

// Entry kinds
const (
	EntryIncome  EntryKind = "income"
	EntryExpense EntryKind = "expense"
)

// LedgerEntry is one rendered transaction in a ledger view
type LedgerEntry struct {
	ID            uint64    `json:"id"`
	Text          string    `json:"text"`
	Kind          EntryKind `json:"kind"`
	DisplayAmount string    `json:"displayAmount"` // e.g. "+₹50" or "-₹12.5"
	CreatedAt     string    `json:"createdAt"`     // empty when not yet committed
}

// LedgerView is the derived, non-persisted summary of a transaction set.
// It is recomputed from scratch on every change; there is no incremental
// maintenance.
type LedgerView struct {
	Balance string        `json:"balance"`
	Income  string        `json:"income"`
	Expense string        `json:"expense"`
	Entries []LedgerEntry `json:"entries"`
}

// BuildLedgerView is a pure transform: given transactions ordered newest
// first, it produces display totals and rendered entries preserving input
// order. balance = Σ amounts, income = Σ positive amounts,
// expense = -1 × Σ negative amounts; a zero amount counts toward balance
// but toward neither income nor expense.
func BuildLedgerView(transactions []*Transaction) *LedgerView {
	var balance, income, expense int64

	entries := make([]LedgerEntry, 0, len(transactions))
	for _, t := range transactions {
		balance += t.AmountInCents
		switch {
		case t.AmountInCents > 0:
			income += t.AmountInCents
		case t.AmountInCents < 0:
			expense -= t.AmountInCents
		}
		entries = append(entries, renderEntry(t))
	}

	return &LedgerView{
		Balance: CentsToDisplay(balance),
		Income:  CentsToDisplay(income),
		Expense: CentsToDisplay(expense),
		Entries: entries,
	}
}

// renderEntry tags a transaction by sign and formats its absolute amount
// with a sign-appropriate prefix
func renderEntry(t *Transaction) LedgerEntry {
	kind := EntryIncome
	prefix := "+"
	amount := t.AmountInCents
	if t.IsExpense() {
		kind = EntryExpense
		prefix = "-"
		amount = -amount
	}

	return LedgerEntry{
		ID:            t.ID,
		Text:          t.Text,
		Kind:          kind,
		DisplayAmount: prefix + CurrencySymbol + CentsToCompact(amount),
		CreatedAt:     renderEntryTime(t.CreatedAt),
	}
}

// renderEntryTime renders an empty string for a record whose timestamp has
// not been committed yet, rather than erroring
func renderEntryTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entryTimeLayout)
}
