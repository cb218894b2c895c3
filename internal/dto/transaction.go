package dto

import (
	"cloud.google.com/go/civil"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to open a transaction for a customer.
type CreateTransactionRequest struct {
	CustomerID              string          `json:"customerId" binding:"required"`
	ProductID               string          `json:"productId" binding:"required"`
	AccountNumber           string          `json:"accountNumber"`
	MovementLimit           int             `json:"movementLimit" binding:"gte=0"`
	CreditLimit             decimal.Decimal `json:"creditLimit" binding:"decimal_gte0" swaggertype:"string"`
	AvailableBalance        decimal.Decimal `json:"availableBalance" binding:"decimal_gte0" swaggertype:"string"`
	MaintenanceCommission   decimal.Decimal `json:"maintenanceCommission" binding:"decimal_gte0" swaggertype:"string"`
	CardNumber              string          `json:"cardNumber"`
	RetirementDateFixedTerm *civil.Date     `json:"retirementDateFixedTerm" swaggertype:"string" example:"2027-06-30"`
}

// UpdateTransactionRequest carries every mutable field. Fields left out of the body are reset
// to their zero value; the customer can not be changed.
type UpdateTransactionRequest struct {
	ProductID               string          `json:"productId" binding:"required"`
	AccountNumber           string          `json:"accountNumber"`
	MovementLimit           int             `json:"movementLimit" binding:"gte=0"`
	CreditLimit             decimal.Decimal `json:"creditLimit" binding:"decimal_gte0" swaggertype:"string"`
	AvailableBalance        decimal.Decimal `json:"availableBalance" binding:"decimal_gte0" swaggertype:"string"`
	MaintenanceCommission   decimal.Decimal `json:"maintenanceCommission" binding:"decimal_gte0" swaggertype:"string"`
	CardNumber              string          `json:"cardNumber"`
	RetirementDateFixedTerm *civil.Date     `json:"retirementDateFixedTerm" swaggertype:"string" example:"2027-06-30"`
}

// TransactionResponse defines the data returned for a transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	ID                      string          `json:"id"`
	CustomerID              string          `json:"customerId"`
	ProductID               string          `json:"productId"`
	AccountNumber           string          `json:"accountNumber"`
	MovementLimit           int             `json:"movementLimit"`
	CreditLimit             decimal.Decimal `json:"creditLimit" swaggertype:"string"`
	AvailableBalance        decimal.Decimal `json:"availableBalance" swaggertype:"string"`
	MaintenanceCommission   decimal.Decimal `json:"maintenanceCommission" swaggertype:"string"`
	CardNumber              string          `json:"cardNumber"`
	RetirementDateFixedTerm *civil.Date     `json:"retirementDateFixedTerm" swaggertype:"string"`
}

// EnrichedTransactionResponse is a transaction with its customer, product and child records.
type EnrichedTransactionResponse struct {
	TransactionResponse
	Customer    domain.Customer     `json:"customer"`
	Product     domain.Product      `json:"product"`
	Deposits    []domain.Deposit    `json:"deposit"`
	Withdrawals []domain.Withdrawal `json:"withdrawal"`
	Payments    []domain.Payment    `json:"payments"`
	Purchases   []domain.Purchase   `json:"purchases"`
	Signatories []domain.Signatory  `json:"signatories"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// ToDomain converts the request into a candidate transaction without an ID.
func (r CreateTransactionRequest) ToDomain() domain.Transaction {
	return domain.Transaction{
		CustomerID:              r.CustomerID,
		ProductID:               r.ProductID,
		AccountNumber:           r.AccountNumber,
		MovementLimit:           r.MovementLimit,
		CreditLimit:             r.CreditLimit,
		AvailableBalance:        r.AvailableBalance,
		MaintenanceCommission:   r.MaintenanceCommission,
		CardNumber:              r.CardNumber,
		RetirementDateFixedTerm: r.RetirementDateFixedTerm,
	}
}

// ToDomain converts the request into an update patch.
func (r UpdateTransactionRequest) ToDomain() domain.Transaction {
	return domain.Transaction{
		ProductID:               r.ProductID,
		AccountNumber:           r.AccountNumber,
		MovementLimit:           r.MovementLimit,
		CreditLimit:             r.CreditLimit,
		AvailableBalance:        r.AvailableBalance,
		MaintenanceCommission:   r.MaintenanceCommission,
		CardNumber:              r.CardNumber,
		RetirementDateFixedTerm: r.RetirementDateFixedTerm,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                      tx.ID,
		CustomerID:              tx.CustomerID,
		ProductID:               tx.ProductID,
		AccountNumber:           tx.AccountNumber,
		MovementLimit:           tx.MovementLimit,
		CreditLimit:             tx.CreditLimit,
		AvailableBalance:        tx.AvailableBalance,
		MaintenanceCommission:   tx.MaintenanceCommission,
		CardNumber:              tx.CardNumber,
		RetirementDateFixedTerm: tx.RetirementDateFixedTerm,
	}
}

// ToTransactionListResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToTransactionListResponse(txs []domain.Transaction) []TransactionResponse {
	list := make([]TransactionResponse, len(txs))
	for i := range txs {
		list[i] = ToTransactionResponse(&txs[i])
	}
	return list
}

// ToEnrichedTransactionResponse converts a domain.EnrichedTransaction to its DTO.
func ToEnrichedTransactionResponse(et *domain.EnrichedTransaction) EnrichedTransactionResponse {
	return EnrichedTransactionResponse{
		TransactionResponse: ToTransactionResponse(&et.Transaction),
		Customer:            et.Customer,
		Product:             et.Product,
		Deposits:            nonNil(et.Deposits),
		Withdrawals:         nonNil(et.Withdrawals),
		Payments:            nonNil(et.Payments),
		Purchases:           nonNil(et.Purchases),
		Signatories:         nonNil(et.Signatories),
	}
}

// ToEnrichedTransactionListResponse converts every enriched transaction to its DTO.
func ToEnrichedTransactionListResponse(ets []domain.EnrichedTransaction) []EnrichedTransactionResponse {
	list := make([]EnrichedTransactionResponse, len(ets))
	for i := range ets {
		list[i] = ToEnrichedTransactionResponse(&ets[i])
	}
	return list
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
