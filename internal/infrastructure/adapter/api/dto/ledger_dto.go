package dto

import (
	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
)

// AddTransactionRequest represents the API request for recording a transaction.
// Amount is a signed decimal string; the sign encodes income versus expense.
type AddTransactionRequest struct {
	Text   string `json:"text" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents one recorded transaction
type TransactionResponse struct {
	ID            uint64 `json:"id"`
	Text          string `json:"text"`
	DisplayAmount string `json:"displayAmount"`
	CreatedAt     string `json:"createdAt"`
}

// LedgerViewResponse represents the derived ledger view. The entity's view is
// already display-shaped, so the DTO embeds it unchanged.
type LedgerViewResponse struct {
	*entity.LedgerView
}
