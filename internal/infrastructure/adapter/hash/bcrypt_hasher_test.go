package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
)

func TestBcryptHasher(t *testing.T) {
	// Minimum cost keeps the test fast
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and compare roundtrip", func(t *testing.T) {
		hashed, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hashed)

		assert.NoError(t, hasher.Compare(hashed, "secret123"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		hashed, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.ErrorIs(t, hasher.Compare(hashed, "wrong"), errs.ErrInvalidCredentials)
	})

	t.Run("Malformed stored hash", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("not-a-bcrypt-hash", "secret123"), errs.ErrInvalidCredentials)
	})

	t.Run("Cost outside the valid range falls back to default", func(t *testing.T) {
		fallback := NewBcryptHasher(100)

		hashed, err := fallback.Hash("secret123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hashed))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
