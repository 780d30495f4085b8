package entity

import (
	"strings"
	"time"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
)

// Transaction represents a single income or expense record owned by one user.
// The sign of the amount encodes the direction: positive is income, negative
// is expense. Transactions are never updated in place.
type Transaction struct {
	ID            uint64    // Unique identifier for the transaction
	UserID        uint64    // ID of the owning user
	Text          string    // Free-text description, non-empty after trimming
	AmountInCents int64     // Signed amount in cents
	CreatedAt     time.Time // When the record was created (server-assigned, sole sort key)
}

// NewTransaction creates a new transaction with validation
func NewTransaction(userID uint64, text, amount string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyText
	}

	amountInCents, err := ParseSignedAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:        userID,
		Text:          text,
		AmountInCents: amountInCents,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsExpense returns true if this transaction decreases the balance
func (t *Transaction) IsExpense() bool {
	return t.AmountInCents < 0
}
