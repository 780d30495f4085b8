package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// sessionKey is the gin context key the resolved session is stored under
const sessionKey = "session"

// Authenticated middleware verifies the bearer token and resolves the
// identity's stored role into a session context for downstream handlers.
// The session is built fresh per request; nothing identity-related is held
// in process-wide state.
func Authenticated(authService usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Authentication required",
			})
			return
		}

		sess, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Session verification failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid or expired session",
			})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom extracts the session context resolved by the Authenticated
// middleware. Handlers behind that middleware can rely on it being present.
func SessionFrom(c *gin.Context) *usecase.SessionContext {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*usecase.SessionContext); ok {
			return sess
		}
	}
	return nil
}

// bearerToken pulls the token out of the Authorization header. The SSE
// endpoint also accepts it as a query parameter since EventSource cannot set
// headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
