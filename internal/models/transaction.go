package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row stored in the transactions table.
type Transaction struct {
	TransactionID           string          `db:"transaction_id"`
	CustomerID              string          `db:"customer_id"`
	ProductID               string          `db:"product_id"`
	AccountNumber           string          `db:"account_number"`
	MovementLimit           int             `db:"movement_limit"`
	CreditLimit             decimal.Decimal `db:"credit_limit"`
	AvailableBalance        decimal.Decimal `db:"available_balance"`
	MaintenanceCommission   decimal.Decimal `db:"maintenance_commission"`
	CardNumber              string          `db:"card_number"`
	RetirementDateFixedTerm *time.Time      `db:"retirement_date_fixed_term"` // Nullable DATE
	CreatedAt               time.Time       `db:"created_at"`
	LastUpdatedAt           time.Time       `db:"last_updated_at"`
}
