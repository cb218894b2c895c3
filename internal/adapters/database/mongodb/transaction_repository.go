package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	"github.com/SscSPs/bank_transaction_service/internal/models"
	"github.com/SscSPs/bank_transaction_service/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionCollection is the collection holding transaction documents.
const TransactionCollection = "transactions"

// MongoTransactionRepository stores transactions as documents keyed by their ID.
type MongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a transaction store on top of db.
func NewMongoTransactionRepository(db *mongo.Database) portsrepo.TransactionStore {
	return &MongoTransactionRepository{collection: db.Collection(TransactionCollection)}
}

var _ portsrepo.TransactionStore = (*MongoTransactionRepository)(nil)

// Save replaces the document with the same ID, inserting it when absent.
func (r *MongoTransactionRepository) Save(ctx context.Context, tx domain.Transaction) error {
	doc := mapping.ToTransactionDocument(tx)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", doc.ID, err)
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *MongoTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var doc models.TransactionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", id, err)
	}

	tx, err := mapping.FromTransactionDocument(doc)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindAll retrieves every transaction document in natural order.
func (r *MongoTransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.TransactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx, err := mapping.FromTransactionDocument(doc)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Delete removes a transaction. Deleting an unknown ID returns apperrors.ErrNotFound.
func (r *MongoTransactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
