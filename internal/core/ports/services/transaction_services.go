package services

import (
	"context"

	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// FindAll returns every stored transaction without enrichment.
	FindAll(ctx context.Context) ([]domain.Transaction, error)

	// FindByID returns one transaction or apperrors.ErrTransactionNotFound.
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// Create validates the candidate against the customer's existing transactions and persists it.
	Create(ctx context.Context, candidate domain.Transaction) (*domain.Transaction, error)

	// Update overlays the mutable fields of patch onto the stored transaction.
	Update(ctx context.Context, patch domain.Transaction, id string) (*domain.Transaction, error)

	// Delete removes the transaction and returns an empty Transaction as acknowledgment.
	Delete(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionDetailSvc defines the enriched read operations
type TransactionDetailSvc interface {
	// FindByIDWithCustomer returns one transaction joined with its remote data.
	FindByIDWithCustomer(ctx context.Context, id string) (*domain.EnrichedTransaction, error)

	// FindAllWithDetail returns every transaction joined with its remote data.
	FindAllWithDetail(ctx context.Context) ([]domain.EnrichedTransaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionDetailSvc
}

// AggregationSvc joins transactions with the data other services own about them.
type AggregationSvc interface {
	Join(ctx context.Context, tx domain.Transaction) (*domain.EnrichedTransaction, error)
	JoinAll(ctx context.Context) ([]domain.EnrichedTransaction, error)
	JoinAllForCustomer(ctx context.Context, customerID string) ([]domain.EnrichedTransaction, error)
}
