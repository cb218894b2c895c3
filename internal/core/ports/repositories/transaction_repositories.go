package repositories

import (
	"context"

	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindAll retrieves every stored transaction.
	FindAll(ctx context.Context) ([]domain.Transaction, error)

	// FindByID retrieves a transaction by its ID. It returns apperrors.ErrNotFound if absent.
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// Save inserts the transaction, or replaces it when the ID already exists.
	Save(ctx context.Context, tx domain.Transaction) error

	// Delete removes the transaction with the given ID.
	Delete(ctx context.Context, id string) error
}

// TransactionStore combines all transaction repository interfaces
type TransactionStore interface {
	TransactionReader
	TransactionWriter
}
