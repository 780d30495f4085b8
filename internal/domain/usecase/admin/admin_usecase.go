package admin

import (
	"context"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/notify"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/persistence"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/domain/usecase/auth"
)

// userRowActions are the actions available on every admin user row.
// Rows carry these as structured records for the rendering layer.
var userRowActions = []usecase.UserAction{
	usecase.ActionViewTransactions,
	usecase.ActionToggleRole,
	usecase.ActionDeleteUser,
}

// AdminUseCase handles the admin-only operations. Every method passes the
// access-control gate before touching the store.
type AdminUseCase struct {
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	uow             persistence.UnitOfWork
	feed            notify.LedgerFeed
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	uow persistence.UnitOfWork,
	feed notify.LedgerFeed,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
		feed:            feed,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListUsers enumerates every user profile with its available actions
func (u *AdminUseCase) ListUsers(ctx context.Context, sess *usecase.SessionContext) ([]usecase.AdminUserRow, error) {
	if err := auth.RequireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := u.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]usecase.AdminUserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, usecase.AdminUserRow{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			Actions:   userRowActions,
		})
	}
	return rows, nil
}

// UserTransactions returns one user's rendered transaction set
func (u *AdminUseCase) UserTransactions(ctx context.Context, sess *usecase.SessionContext, userID uint64) ([]entity.LedgerEntry, error) {
	if err := auth.RequireAdmin(sess); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	transactions, err := u.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.BuildLedgerView(transactions).Entries, nil
}

// SetRole changes a user's role and returns the updated profile
func (u *AdminUseCase) SetRole(ctx context.Context, sess *usecase.SessionContext, userID uint64, role entity.Role) (*entity.User, error) {
	if err := auth.RequireAdmin(sess); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetRole(role, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("User role updated", map[string]any{
		"admin_id": sess.UserID,
		"user_id":  userID,
		"role":     role,
	})
	return user, nil
}

// DeleteUser removes a user profile after cascading away all of the user's
// transactions, in one atomic unit of work. The store enforces no
// referential integrity; the cascade lives here.
func (u *AdminUseCase) DeleteUser(ctx context.Context, sess *usecase.SessionContext, userID uint64) error {
	if err := auth.RequireAdmin(sess); err != nil {
		return err
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}

	removed, err := u.uow.GetTransactionRepository(txCtx).DeleteAllByUser(txCtx, userID)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	if err := u.uow.GetUserRepository(txCtx).Delete(txCtx, userID); err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return err
	}

	u.logger.Info("User deleted with transaction cascade", map[string]any{
		"admin_id":             sess.UserID,
		"user_id":              userID,
		"transactions_removed": removed,
	})
	return nil
}

// DeleteTransaction removes any user's transaction and notifies that user's
// live view
func (u *AdminUseCase) DeleteTransaction(ctx context.Context, sess *usecase.SessionContext, userID, transactionID uint64) error {
	if err := auth.RequireAdmin(sess); err != nil {
		return err
	}

	if err := u.transactionRepo.Delete(ctx, userID, transactionID); err != nil {
		return err
	}

	u.logger.Info("Transaction deleted by admin", map[string]any{
		"admin_id":       sess.UserID,
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	u.feed.Publish(userID)
	return nil
}
