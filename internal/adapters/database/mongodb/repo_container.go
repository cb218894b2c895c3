package mongodb

import (
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires every mongo-backed repository.
func NewRepositoryProvider(db *mongo.Database) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewMongoTransactionRepository(db),
	}
}
