package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	"github.com/SscSPs/bank_transaction_service/internal/models"
	"github.com/SscSPs/bank_transaction_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, customer_id, product_id, account_number, movement_limit,
	credit_limit, available_balance, maintenance_commission, card_number, retirement_date_fixed_term,
	created_at, last_updated_at`

// PgxTransactionRepository stores transactions in PostgreSQL.
type PgxTransactionRepository struct {
	BaseRepository
	now func() time.Time
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionStore {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            time.Now,
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionStore = (*PgxTransactionRepository)(nil)

// Save inserts a transaction or updates the existing row with the same ID.
// customer_id and created_at are only written on insert.
func (r *PgxTransactionRepository) Save(ctx context.Context, tx domain.Transaction) error {
	m := mapping.ToModelTransaction(tx)
	now := r.now().UTC()

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (transaction_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			account_number = EXCLUDED.account_number,
			movement_limit = EXCLUDED.movement_limit,
			credit_limit = EXCLUDED.credit_limit,
			available_balance = EXCLUDED.available_balance,
			maintenance_commission = EXCLUDED.maintenance_commission,
			card_number = EXCLUDED.card_number,
			retirement_date_fixed_term = EXCLUDED.retirement_date_fixed_term,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.CustomerID,
		m.ProductID,
		m.AccountNumber,
		m.MovementLimit,
		m.CreditLimit,
		m.AvailableBalance,
		m.MaintenanceCommission,
		m.CardNumber,
		m.RetirementDateFixedTerm,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", id, err)
	}

	tx := mapping.ToDomainTransaction(m)
	return &tx, nil
}

// FindAll retrieves every transaction in insertion order.
func (r *PgxTransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at, transaction_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxs), nil
}

// Delete removes a transaction. Deleting an unknown ID returns apperrors.ErrNotFound.
func (r *PgxTransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CustomerID,
		&m.ProductID,
		&m.AccountNumber,
		&m.MovementLimit,
		&m.CreditLimit,
		&m.AvailableBalance,
		&m.MaintenanceCommission,
		&m.CardNumber,
		&m.RetirementDateFixedTerm,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}
