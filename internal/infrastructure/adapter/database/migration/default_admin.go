package migration

import (
	"context"
	"errors"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/persistence"
)

// SeedAdmin describes the bootstrap admin account created on first start.
// Signup can never produce an admin, so a fresh deployment needs one seeded
// before the role toggle becomes reachable.
type SeedAdmin struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin ensures the bootstrap admin account exists. An empty
// seed email disables seeding; an existing account is left untouched.
func CreateDefaultAdmin(
	ctx context.Context,
	seed SeedAdmin,
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	if seed.Email == "" {
		logger.Debug("No admin seed configured, skipping", nil)
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, seed.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	admin, err := entity.NewUser(seed.Name, seed.Email, hash, timeProvider)
	if err != nil {
		return err
	}
	if err := admin.SetRole(entity.RoleAdmin, timeProvider); err != nil {
		return err
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin account created", map[string]any{
		"user_id": admin.ID,
		"email":   admin.Email,
	})
	return nil
}
