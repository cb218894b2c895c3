package mapping

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:           d.ID,
		CustomerID:              d.CustomerID,
		ProductID:               d.ProductID,
		AccountNumber:           d.AccountNumber,
		MovementLimit:           d.MovementLimit,
		CreditLimit:             d.CreditLimit,
		AvailableBalance:        d.AvailableBalance,
		MaintenanceCommission:   d.MaintenanceCommission,
		CardNumber:              d.CardNumber,
		RetirementDateFixedTerm: dateToTime(d.RetirementDateFixedTerm),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:                      m.TransactionID,
		CustomerID:              m.CustomerID,
		ProductID:               m.ProductID,
		AccountNumber:           m.AccountNumber,
		MovementLimit:           m.MovementLimit,
		CreditLimit:             m.CreditLimit,
		AvailableBalance:        m.AvailableBalance,
		MaintenanceCommission:   m.MaintenanceCommission,
		CardNumber:              m.CardNumber,
		RetirementDateFixedTerm: timeToDate(m.RetirementDateFixedTerm),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToTransactionDocument converts a domain Transaction to its mongo document
func ToTransactionDocument(d domain.Transaction) models.TransactionDocument {
	doc := models.TransactionDocument{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		ProductID:             d.ProductID,
		AccountNumber:         d.AccountNumber,
		MovementLimit:         d.MovementLimit,
		CreditLimit:           d.CreditLimit.String(),
		AvailableBalance:      d.AvailableBalance.String(),
		MaintenanceCommission: d.MaintenanceCommission.String(),
		CardNumber:            d.CardNumber,
	}
	if d.RetirementDateFixedTerm != nil {
		s := d.RetirementDateFixedTerm.String()
		doc.RetirementDateFixedTerm = &s
	}
	return doc
}

// FromTransactionDocument converts a mongo document to a domain Transaction
func FromTransactionDocument(doc models.TransactionDocument) (domain.Transaction, error) {
	creditLimit, err := parseMoney(doc.CreditLimit)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("credit limit of %s: %w", doc.ID, err)
	}
	availableBalance, err := parseMoney(doc.AvailableBalance)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("available balance of %s: %w", doc.ID, err)
	}
	commission, err := parseMoney(doc.MaintenanceCommission)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("maintenance commission of %s: %w", doc.ID, err)
	}

	tx := domain.Transaction{
		ID:                    doc.ID,
		CustomerID:            doc.CustomerID,
		ProductID:             doc.ProductID,
		AccountNumber:         doc.AccountNumber,
		MovementLimit:         doc.MovementLimit,
		CreditLimit:           creditLimit,
		AvailableBalance:      availableBalance,
		MaintenanceCommission: commission,
		CardNumber:            doc.CardNumber,
	}
	if doc.RetirementDateFixedTerm != nil {
		date, err := civil.ParseDate(*doc.RetirementDateFixedTerm)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("retirement date of %s: %w", doc.ID, err)
		}
		tx.RetirementDateFixedTerm = &date
	}
	return tx, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func dateToTime(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.In(time.UTC)
	return &t
}

func timeToDate(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}
