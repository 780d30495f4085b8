package persistence

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// UserRepository defines methods to interact with user profile data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by login email
	// Used by login and by password-reset dispatch
	//
	// Possible errors:
	// - ErrUserNotFound: If no user holds this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user profile and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists profile changes (role, password hash, name)
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user profile. Callers are responsible for cascading
	// the user's transactions first; the store enforces no referential
	// integrity on its own.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// ListAll enumerates every user profile, oldest first.
	// Used by the admin user list and the aggregation sweep.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
