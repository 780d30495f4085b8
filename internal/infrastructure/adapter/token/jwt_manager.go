package token

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/core"
)

// Token kinds. A reset token must never pass session verification, so the
// kind is baked into the claims and checked on every verify.
const (
	kindSession = "session"
	kindReset   = "reset"
)

type ledgerClaims struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

// JWTManager implements TokenManager with HMAC-signed JWTs
type JWTManager struct {
	secret       []byte
	sessionTTL   core.Duration
	resetTTL     core.Duration
	timeProvider core.TimeProvider
}

// NewJWTManager creates a new JWTManager
func NewJWTManager(secret string, sessionTTL, resetTTL core.Duration, timeProvider core.TimeProvider) *JWTManager {
	return &JWTManager{
		secret:       []byte(secret),
		sessionTTL:   sessionTTL,
		resetTTL:     resetTTL,
		timeProvider: timeProvider,
	}
}

// IssueSession creates a signed session token for the given identity
func (m *JWTManager) IssueSession(userID uint64, email string) (string, error) {
	return m.issue(userID, email, kindSession, m.sessionTTL)
}

// VerifySession validates a session token and returns its claims
func (m *JWTManager) VerifySession(token string) (*core.SessionClaims, error) {
	return m.verify(token, kindSession)
}

// IssueReset creates a signed password-reset token for the given identity
func (m *JWTManager) IssueReset(userID uint64, email string) (string, error) {
	return m.issue(userID, email, kindReset, m.resetTTL)
}

// VerifyReset validates a reset token and returns its claims
func (m *JWTManager) VerifyReset(token string) (*core.SessionClaims, error) {
	return m.verify(token, kindReset)
}

func (m *JWTManager) issue(userID uint64, email, kind string, ttl core.Duration) (string, error) {
	now := m.timeProvider.Now()

	claims := ledgerClaims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl.Std())),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) verify(token, kind string) (*core.SessionClaims, error) {
	claims := &ledgerClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}

	if !parsed.Valid || claims.Kind != kind {
		return nil, errs.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, errs.ErrInvalidToken
	}

	return &core.SessionClaims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
