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

// LedgerHandler handles the session user's transaction HTTP requests
type LedgerHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// View handles the GET /ledger endpoint
func (h *LedgerHandler) View(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	view, err := h.ledgerService.View(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LedgerViewResponse{LedgerView: view})
}

// AddTransaction handles the POST /ledger/transactions endpoint
func (h *LedgerHandler) AddTransaction(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	transaction, err := h.ledgerService.AddTransaction(c.Request.Context(), sess, req.Text, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{
		ID:            transaction.ID,
		Text:          transaction.Text,
		DisplayAmount: entity.CentsToDisplay(transaction.AmountInCents),
		CreatedAt:     transaction.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}

// DeleteTransaction handles the DELETE /ledger/transactions/:id endpoint
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), sess, transactionID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
