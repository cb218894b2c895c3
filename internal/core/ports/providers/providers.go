// Package providers declares the read contracts of the services that own
// the data a transaction is joined with.
package providers

import (
	"context"

	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
)

// CustomerProvider reads customers from the customer service.
type CustomerProvider interface {
	// GetCustomer returns apperrors.ErrCustomerNotFound when the id is unknown.
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}

// ProductProvider reads products from the product service.
type ProductProvider interface {
	// GetProduct returns apperrors.ErrProductNotFound when the id is unknown.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// ChildRecordProvider lists every record of one kind. The owning service does not
// filter; callers match on TransactionID themselves.
type ChildRecordProvider[T domain.ChildRecord] interface {
	ListAll(ctx context.Context) ([]T, error)
}

type (
	DepositProvider    = ChildRecordProvider[domain.Deposit]
	WithdrawalProvider = ChildRecordProvider[domain.Withdrawal]
	PaymentProvider    = ChildRecordProvider[domain.Payment]
	PurchaseProvider   = ChildRecordProvider[domain.Purchase]
	SignatoryProvider  = ChildRecordProvider[domain.Signatory]
)

// ProviderSet bundles the seven downstream providers.
type ProviderSet struct {
	Customers   CustomerProvider
	Products    ProductProvider
	Deposits    DepositProvider
	Withdrawals WithdrawalProvider
	Payments    PaymentProvider
	Purchases   PurchaseProvider
	Signatories SignatoryProvider
}
