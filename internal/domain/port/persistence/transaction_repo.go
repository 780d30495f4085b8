package persistence

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with transaction records
type TransactionRepository interface {
	// Create persists a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser retrieves a user's full transaction set ordered by
	// creation time, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Delete removes one transaction owned by the given user.
	// The owner scoping means a user can never delete another user's record.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists under this owner
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, userID, transactionID uint64) error

	// DeleteAllByUser removes every transaction owned by the given user and
	// returns the number of rows removed. Used by the user-delete cascade.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DeleteAllByUser(ctx context.Context, userID uint64) (int64, error)
}
