package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
)

func TestRequireSession(t *testing.T) {
	t.Run("Nil session", func(t *testing.T) {
		assert.ErrorIs(t, RequireSession(nil), errs.ErrUnauthenticated)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		sess := &usecase.SessionContext{UserID: 0}
		assert.ErrorIs(t, RequireSession(sess), errs.ErrUnauthenticated)
	})

	t.Run("Authenticated session", func(t *testing.T) {
		sess := &usecase.SessionContext{UserID: 7, Role: entity.RoleUser}
		assert.NoError(t, RequireSession(sess))
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Nil session fails authentication first", func(t *testing.T) {
		assert.ErrorIs(t, RequireAdmin(nil), errs.ErrUnauthenticated)
	})

	t.Run("Authenticated non-admin is denied", func(t *testing.T) {
		sess := &usecase.SessionContext{UserID: 7, Role: entity.RoleUser}
		assert.ErrorIs(t, RequireAdmin(sess), errs.ErrForbidden)
	})

	t.Run("Admin is granted", func(t *testing.T) {
		sess := &usecase.SessionContext{UserID: 7, Role: entity.RoleAdmin}
		assert.NoError(t, RequireAdmin(sess))
	})
}

func TestLandingFor(t *testing.T) {
	assert.Equal(t, usecase.LandingAdmin, LandingFor(entity.RoleAdmin))
	assert.Equal(t, usecase.LandingUser, LandingFor(entity.RoleUser))
	assert.Equal(t, usecase.LandingUser, LandingFor(entity.Role("")))
}
