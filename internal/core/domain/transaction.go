package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction is the aggregate root: a customer's holding of one product
// (a bank account or a credit line) together with its limits and balances.
type Transaction struct {
	ID                      string          `json:"id"`         // Primary Key (UUID assigned on create)
	CustomerID              string          `json:"customerId"` // Remote customer reference, immutable after create
	ProductID               string          `json:"productId"`  // Remote product reference
	AccountNumber           string          `json:"accountNumber"`
	MovementLimit           int             `json:"movementLimit"` // Maximum number of monthly movements
	CreditLimit             decimal.Decimal `json:"creditLimit"`
	AvailableBalance        decimal.Decimal `json:"availableBalance"`
	MaintenanceCommission   decimal.Decimal `json:"maintenanceCommission"`
	CardNumber              string          `json:"cardNumber"`
	RetirementDateFixedTerm *civil.Date     `json:"retirementDateFixedTerm"` // Only meaningful for fixed-term products
}

// ApplyUpdate overlays the mutable fields of patch onto t. ID and CustomerID are never touched.
func (t *Transaction) ApplyUpdate(patch Transaction) {
	t.ProductID = patch.ProductID
	t.AccountNumber = patch.AccountNumber
	t.MovementLimit = patch.MovementLimit
	t.CreditLimit = patch.CreditLimit
	t.AvailableBalance = patch.AvailableBalance
	t.MaintenanceCommission = patch.MaintenanceCommission
	t.CardNumber = patch.CardNumber
	t.RetirementDateFixedTerm = patch.RetirementDateFixedTerm
}

// EnrichedTransaction is a Transaction joined with the remote data that belongs to it.
// It is computed on demand and never persisted.
type EnrichedTransaction struct {
	Transaction
	Customer    Customer     `json:"customer"`
	Product     Product      `json:"product"`
	Deposits    []Deposit    `json:"deposit"`
	Withdrawals []Withdrawal `json:"withdrawal"`
	Payments    []Payment    `json:"payments"`
	Purchases   []Purchase   `json:"purchases"`
	Signatories []Signatory  `json:"signatories"`
}
