package handler

import (
	"net/http"

	domainerr "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	authService usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// SignUp handles the POST /auth/signup endpoint
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Token:   session.Token,
		Landing: string(session.Landing),
	})
}

// LogIn handles the POST /auth/login endpoint
func (h *AuthHandler) LogIn(c *gin.Context) {
	var req dto.LogInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authService.LogIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:   session.Token,
		Landing: string(session.Landing),
	})
}

// LogOut handles the POST /auth/logout endpoint. Sessions are stateless
// tokens, so logout succeeds once the middleware has verified the caller;
// the client discards the token.
func (h *AuthHandler) LogOut(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	h.logger.Info("Session closed", map[string]any{
		"user_id": sess.UserID,
	})
	c.Status(http.StatusNoContent)
}

// Me handles the GET /me endpoint. An absent profile row answers with the
// session's identity and default role instead of an error.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	user, err := h.authService.Profile(c.Request.Context(), sess.UserID)
	if err != nil {
		if domainerr.IsNotFoundError(err) {
			c.JSON(http.StatusOK, dto.ProfileResponse{
				ID:    sess.UserID,
				Email: sess.Email,
				Role:  string(sess.Role),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
}

// RequestPasswordReset handles the POST /auth/password-reset endpoint.
// It answers 202 whether or not the address is known.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// ConfirmPasswordReset handles the POST /auth/password-reset/confirm endpoint
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
