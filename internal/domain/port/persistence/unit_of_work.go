package persistence

import "context"

// UnitOfWork coordinates multiple repository writes inside one database
// transaction. The user-delete cascade (transactions first, then the profile)
// runs under a unit of work so a partial cascade can never be observed.
type UnitOfWork interface {
	// Begin starts a new database transaction and returns a context bound to it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction bound to the context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction bound to the context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the
	// current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
