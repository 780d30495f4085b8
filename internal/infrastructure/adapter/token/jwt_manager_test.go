package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	coremocks "github.com/raghavmehta/expense-ledger/mocks/port/core"
)

const (
	testSecret = "test-secret-key"
	sessionTTL = core.Duration(24 * time.Hour)
	resetTTL   = core.Duration(30 * time.Minute)
)

func TestSessionTokens(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Issue and verify roundtrip", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueSession(42, "alice@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.VerifySession(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("Expired session token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockTime.EXPECT().Now().Return(fixedTime.Add(25 * time.Hour)).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueSession(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := manager.VerifySession(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("Garbage token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		claims, err := manager.VerifySession("not-a-jwt")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Token signed with a different secret", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		issuer := NewJWTManager("other-secret", sessionTTL, resetTTL, mockTime)
		verifier := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := issuer.IssueSession(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := verifier.VerifySession(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestResetTokens(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Issue and verify roundtrip", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueReset(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := manager.VerifyReset(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
	})

	t.Run("Reset token expires on its own shorter TTL", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockTime.EXPECT().Now().Return(fixedTime.Add(31 * time.Minute)).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueReset(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := manager.VerifyReset(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Reset token never passes session verification", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueReset(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := manager.VerifySession(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Session token never passes reset verification", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		manager := NewJWTManager(testSecret, sessionTTL, resetTTL, mockTime)

		token, err := manager.IssueSession(42, "alice@example.com")
		require.NoError(t, err)

		claims, err := manager.VerifyReset(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
