package pgsql

import (
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres-backed repository.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewPgxTransactionRepository(dbPool),
	}
}
