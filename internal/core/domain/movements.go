package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ChildRecord is implemented by every record another service keeps about a transaction.
type ChildRecord interface {
	Deposit | Withdrawal | Payment | Purchase | Signatory
	GetTransactionID() string
}

// Deposit is a credit of funds into an account, owned by the deposit service.
type Deposit struct {
	ID            string          `json:"id"`
	Date          civil.Date      `json:"date"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Description   string          `json:"description"`
	TransactionID string          `json:"transactionId"`
}

func (d Deposit) GetTransactionID() string { return d.TransactionID }

// Withdrawal is a debit of funds from an account, owned by the withdrawal service.
type Withdrawal struct {
	ID               string          `json:"id"`
	Date             civil.Date      `json:"date"`
	WithdrawalAmount decimal.Decimal `json:"withdrawalAmount"`
	Description      string          `json:"description"`
	TransactionID    string          `json:"transactionId"`
}

func (w Withdrawal) GetTransactionID() string { return w.TransactionID }

// Payment is a repayment against a credit product, owned by the payment service.
type Payment struct {
	ID            string          `json:"id"`
	Date          civil.Date      `json:"date"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	Description   string          `json:"description"`
	TransactionID string          `json:"transactionId"`
}

func (p Payment) GetTransactionID() string { return p.TransactionID }

// Purchase is a charge made with a credit product, owned by the purchase service.
type Purchase struct {
	ID             string          `json:"id"`
	Date           civil.Date      `json:"date"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	Description    string          `json:"description"`
	TransactionID  string          `json:"transactionId"`
}

func (p Purchase) GetTransactionID() string { return p.TransactionID }

// Signatory is a person authorised to operate a business account.
type Signatory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LastName      string `json:"lastName"`
	DocNumber     string `json:"docNumber"`
	TransactionID string `json:"transactionId"`
}

func (s Signatory) GetTransactionID() string { return s.TransactionID }

// FilterByTransaction returns the records linked to transactionID, preserving input order.
// The result is never nil.
func FilterByTransaction[T ChildRecord](records []T, transactionID string) []T {
	out := make([]T, 0)
	for _, r := range records {
		if r.GetTransactionID() == transactionID {
			out = append(out, r)
		}
	}
	return out
}
