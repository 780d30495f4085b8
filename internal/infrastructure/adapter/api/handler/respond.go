package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and the standard error
// body. Internal errors are never echoed verbatim to the client.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// statusForError resolves the HTTP status for a domain error
func statusForError(err error) int {
	switch {
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case domainerr.IsAuthenticationError(err):
		return http.StatusUnauthorized
	case domainerr.IsAuthorizationError(err):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateEmailError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
