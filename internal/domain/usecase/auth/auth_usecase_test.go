package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	coremocks "github.com/raghavmehta/expense-ledger/mocks/port/core"
	persistencemocks "github.com/raghavmehta/expense-ledger/mocks/port/persistence"
)

type authMocks struct {
	userRepo *persistencemocks.MockUserRepository
	hasher   *coremocks.MockPasswordHasher
	tokens   *coremocks.MockTokenManager
	mailer   *coremocks.MockMailer
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, *authMocks) {
	m := &authMocks{
		userRepo: persistencemocks.NewMockUserRepository(t),
		hasher:   coremocks.NewMockPasswordHasher(t),
		tokens:   coremocks.NewMockTokenManager(t),
		mailer:   coremocks.NewMockMailer(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc := NewAuthUseCase(m.userRepo, m.hasher, m.tokens, m.mailer, m.time, m.logger)
	return uc, m
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful signup opens a user session", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "alice@example.com" && user.Role == entity.RoleUser
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		m.tokens.EXPECT().IssueSession(uint64(42), "alice@example.com").Return("session-token", nil).Once()

		session, err := uc.SignUp(ctx, "Alice", "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "session-token", session.Token)
		assert.Equal(t, usecase.LandingUser, session.Landing)
		assert.Equal(t, uint64(42), session.User.ID)
	})

	t.Run("Password below minimum length", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		session, err := uc.SignUp(ctx, "Alice", "alice@example.com", "short")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("Invalid email", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()

		session, err := uc.SignUp(ctx, "Alice", "not-an-address", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateEmail).Once()

		session, err := uc.SignUp(ctx, "Alice", "alice@example.com", "secret123")

		assert.Nil(t, session)
		assert.True(t, errs.IsDuplicateEmailError(err))

		var authErr *errs.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "signup", authErr.Operation)
	})

	t.Run("Hashing failure masks as internal error", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.hasher.EXPECT().Hash("secret123").Return("", assert.AnError).Once()

		session, err := uc.SignUp(ctx, "Alice", "alice@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestLogIn(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful login routes by stored role", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		admin := entity.RehydrateUser(7, "Root", "root@example.com", "stored-hash", entity.RoleAdmin, fixedTime, fixedTime)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "root@example.com").Return(admin, nil).Once()
		m.hasher.EXPECT().Compare("stored-hash", "secret123").Return(nil).Once()
		m.tokens.EXPECT().IssueSession(uint64(7), "root@example.com").Return("session-token", nil).Once()

		session, err := uc.LogIn(ctx, "root@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, usecase.LandingAdmin, session.Landing)
		assert.Equal(t, "session-token", session.Token)
	})

	t.Run("Unknown email answers like a bad password", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		session, err := uc.LogIn(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		user := entity.RehydrateUser(7, "Alice", "alice@example.com", "stored-hash", entity.RoleUser, fixedTime, fixedTime)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()
		m.hasher.EXPECT().Compare("stored-hash", "wrong").Return(errs.ErrInvalidCredentials).Once()

		session, err := uc.LogIn(ctx, "alice@example.com", "wrong")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Empty credentials rejected before any lookup", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		session, err := uc.LogIn(ctx, "   ", "")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid token resolves stored role", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		admin := entity.RehydrateUser(7, "Root", "root@example.com", "hash", entity.RoleAdmin, fixedTime, fixedTime)

		m.tokens.EXPECT().VerifySession("token").Return(&core.SessionClaims{UserID: 7, Email: "root@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(admin, nil).Once()

		sess, err := uc.Authenticate(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), sess.UserID)
		assert.Equal(t, "root@example.com", sess.Email)
		assert.Equal(t, entity.RoleAdmin, sess.Role)
	})

	t.Run("Absent profile defaults to user role", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().VerifySession("token").Return(&core.SessionClaims{UserID: 9, Email: "gone@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		sess, err := uc.Authenticate(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, sess.Role)
	})

	t.Run("Invalid token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().VerifySession("bad").Return(nil, errs.ErrInvalidToken).Once()

		sess, err := uc.Authenticate(ctx, "bad")

		assert.Nil(t, sess)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Store failure is not masked", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().VerifySession("token").Return(&core.SessionClaims{UserID: 7, Email: "a@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrDatabaseConnection).Once()

		sess, err := uc.Authenticate(ctx, "token")

		assert.Nil(t, sess)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns stored profile", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		user := entity.RehydrateUser(7, "Alice", "alice@example.com", "hash", entity.RoleUser, fixedTime, fixedTime)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(user, nil).Once()

		got, err := uc.Profile(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		got, err := uc.Profile(ctx, 0)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Known address dispatches a reset token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		user := entity.RehydrateUser(7, "Alice", "alice@example.com", "hash", entity.RoleUser, fixedTime, fixedTime)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()
		m.tokens.EXPECT().IssueReset(uint64(7), "alice@example.com").Return("reset-token", nil).Once()
		m.mailer.EXPECT().SendPasswordReset(mock.Anything, "alice@example.com", "reset-token").Return(nil).Once()

		err := uc.RequestPasswordReset(ctx, "alice@example.com")

		assert.NoError(t, err)
	})

	t.Run("Unknown address is answered the same as a known one", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		err := uc.RequestPasswordReset(ctx, "ghost@example.com")

		assert.NoError(t, err)
	})

	t.Run("Mail dispatch failure masks as internal error", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		user := entity.RehydrateUser(7, "Alice", "alice@example.com", "hash", entity.RoleUser, fixedTime, fixedTime)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()
		m.tokens.EXPECT().IssueReset(uint64(7), "alice@example.com").Return("reset-token", nil).Once()
		m.mailer.EXPECT().SendPasswordReset(mock.Anything, "alice@example.com", "reset-token").Return(assert.AnError).Once()

		err := uc.RequestPasswordReset(ctx, "alice@example.com")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestConfirmPasswordReset(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful reset replaces the credential", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		user := entity.RehydrateUser(7, "Alice", "alice@example.com", "old-hash", entity.RoleUser, fixedTime, fixedTime)

		m.tokens.EXPECT().VerifyReset("reset-token").Return(&core.SessionClaims{UserID: 7, Email: "alice@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(user, nil).Once()
		m.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime.Add(time.Hour)).Once()
		m.userRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash() == "new-hash"
		})).Return(nil).Once()

		err := uc.ConfirmPasswordReset(ctx, "reset-token", "newsecret")

		assert.NoError(t, err)
	})

	t.Run("Invalid reset token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().VerifyReset("bad").Return(nil, errs.ErrInvalidToken).Once()

		err := uc.ConfirmPasswordReset(ctx, "bad", "newsecret")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("New password below minimum length", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().VerifyReset("reset-token").Return(&core.SessionClaims{UserID: 7, Email: "alice@example.com"}, nil).Once()

		err := uc.ConfirmPasswordReset(ctx, "reset-token", "short")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})
}
