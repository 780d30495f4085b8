package handler

import (
	"net/http"
	"strconv"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	domainerr "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin-only HTTP requests. Role enforcement lives in
// the use case; the handler only shapes requests and responses.
type AdminHandler struct {
	adminService usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles the GET /admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	rows, err := h.adminService.ListUsers(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// UserTransactions handles the GET /admin/users/:id/transactions endpoint
func (h *AdminHandler) UserTransactions(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	userID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	entries, err := h.adminService.UserTransactions(c.Request.Context(), sess, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SweepTransactions handles the GET /admin/transactions endpoint
func (h *AdminHandler) SweepTransactions(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	entries, err := h.adminService.SweepTransactions(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SetRole handles the PUT /admin/users/:id/role endpoint
func (h *AdminHandler) SetRole(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	userID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.adminService.SetRole(c.Request.Context(), sess, userID, entity.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserRoleResponse{
		ID:   user.ID,
		Role: string(user.Role),
	})
}

// DeleteUser handles the DELETE /admin/users/:id endpoint
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	userID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), sess, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTransaction handles the DELETE /admin/users/:id/transactions/:txId endpoint
func (h *AdminHandler) DeleteTransaction(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	userID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	transactionID, ok := h.pathID(c, "txId")
	if !ok {
		return
	}

	if err := h.adminService.DeleteTransaction(c.Request.Context(), sess, userID, transactionID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, answering 400 on failure
func (h *AdminHandler) pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}
