package repository

import (
	"context"
	"fmt"

	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            txModel.ID,
		UserID:        txModel.UserID,
		Text:          txModel.Text,
		AmountInCents: txModel.AmountInCents,
		CreatedAt:     txModel.CreatedAt,
	}
}

// Create persists a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		UserID:        transaction.UserID,
		Text:          transaction.Text,
		AmountInCents: transaction.AmountInCents,
		CreatedAt:     transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&txModel)

	if result.Error != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"user_id": transaction.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = txModel.ID

	r.logger.Debug("Transaction created", map[string]any{
		"user_id":        transaction.UserID,
		"transaction_id": transaction.ID,
	})
	return nil
}

// ListByUser retrieves a user's full transaction set, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}
	return transactions, nil
}

// Delete removes one transaction owned by the given user
func (r *TransactionRepository) Delete(ctx context.Context, userID, transactionID uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Transaction{}, transactionID)

	if result.Error != nil {
		r.logger.Error("Database error when deleting transaction", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found under this owner", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
		})
		return errs.ErrTransactionNotFound
	}

	return nil
}

// DeleteAllByUser removes every transaction owned by the given user
func (r *TransactionRepository) DeleteAllByUser(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Transaction{})

	if result.Error != nil {
		r.logger.Error("Database error when cascading transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Transactions cascaded", map[string]any{
		"user_id": userID,
		"removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
