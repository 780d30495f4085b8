package usecase

import (
	"context"
	"time"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// UserAction names an operation an admin may invoke on a user row. Rows carry
// structured action records instead of interpolated markup so the rendering
// layer stays decoupled from how actions are invoked.
type UserAction string

// Available per-row admin actions
const (
	ActionViewTransactions UserAction = "view-transactions"
	ActionToggleRole       UserAction = "toggle-role"
	ActionDeleteUser       UserAction = "delete-user"
)

// AdminUserRow is the data-driven view model for one user in the admin list
type AdminUserRow struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      entity.Role  `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
	Actions   []UserAction `json:"actions"`
}

// SweepEntry is one transaction in the merged all-users feed, annotated with
// its owner
type SweepEntry struct {
	OwnerID    uint64 `json:"ownerId"`
	OwnerEmail string `json:"ownerEmail"`
	entity.LedgerEntry
}

// AdminUseCase defines the admin-only operations. Every method gates on the
// session's stored role before touching the store.
type AdminUseCase interface {
	// ListUsers enumerates every user profile with its available actions
	ListUsers(ctx context.Context, sess *SessionContext) ([]AdminUserRow, error)

	// UserTransactions returns one user's rendered transaction set
	UserTransactions(ctx context.Context, sess *SessionContext, userID uint64) ([]entity.LedgerEntry, error)

	// SweepTransactions fetches every user's full transaction set
	// concurrently and merges all of them into one flat feed. The merge waits
	// for every fetch; a single failed fetch fails the whole sweep.
	SweepTransactions(ctx context.Context, sess *SessionContext) ([]SweepEntry, error)

	// SetRole changes a user's role and returns the updated profile
	SetRole(ctx context.Context, sess *SessionContext, userID uint64, role entity.Role) (*entity.User, error)

	// DeleteUser removes a user profile after cascading away all of the
	// user's transactions, atomically
	DeleteUser(ctx context.Context, sess *SessionContext, userID uint64) error

	// DeleteTransaction removes any user's transaction
	DeleteTransaction(ctx context.Context, sess *SessionContext, userID, transactionID uint64) error
}
