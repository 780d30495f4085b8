package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/domain/usecase/auth"
)

// sweepConcurrency caps how many per-user fetches run at once
const sweepConcurrency = 8

// SweepTransactions fetches every user's full transaction set concurrently
// and merges all of them into one flat feed annotated with the owner's
// email. The merge waits on an all-complete barrier; a single failed fetch
// fails the whole sweep and nothing partial is returned. Per-user
// sub-sequences keep their own newest-first order but are not interleaved
// across users.
func (u *AdminUseCase) SweepTransactions(ctx context.Context, sess *usecase.SessionContext) ([]usecase.SweepEntry, error) {
	if err := auth.RequireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := u.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	perUser := make([][]usecase.SweepEntry, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)

	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			transactions, err := u.transactionRepo.ListByUser(gctx, user.ID)
			if err != nil {
				return errs.NewSweepError(user.ID, user.Email, err)
			}

			entries := entity.BuildLedgerView(transactions).Entries
			annotated := make([]usecase.SweepEntry, 0, len(entries))
			for _, entry := range entries {
				annotated = append(annotated, usecase.SweepEntry{
					OwnerID:     user.ID,
					OwnerEmail:  user.Email,
					LedgerEntry: entry,
				})
			}
			perUser[i] = annotated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.logger.Error("Admin sweep failed", map[string]any{
			"admin_id": sess.UserID,
			"error":    err.Error(),
		})
		return nil, err
	}

	merged := make([]usecase.SweepEntry, 0)
	for _, entries := range perUser {
		merged = append(merged, entries...)
	}

	u.logger.Info("Admin sweep completed", map[string]any{
		"admin_id": sess.UserID,
		"users":    len(users),
		"entries":  len(merged),
	})
	return merged, nil
}
