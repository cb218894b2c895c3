package services_test

import (
	"testing"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/services"
	"github.com/stretchr/testify/assert"
)

var (
	personal = domain.Customer{ID: "C1", TypeCustomer: domain.PersonalCustomer}
	business = domain.Customer{ID: "B1", TypeCustomer: domain.BusinessCustomer}

	savings   = domain.Product{ID: "P1", IndProduct: domain.AccountProduct, TypeProduct: domain.SavingsAccount}
	checking  = domain.Product{ID: "P3", IndProduct: domain.AccountProduct, TypeProduct: domain.CheckingAccount}
	fixedTerm = domain.Product{ID: "P4", IndProduct: domain.AccountProduct, TypeProduct: domain.FixedTermAccount}
	credit    = domain.Product{ID: "P2", IndProduct: domain.CreditProduct}
	credit2   = domain.Product{ID: "P5", IndProduct: domain.CreditProduct}
)

func enriched(id string, customer domain.Customer, product domain.Product) domain.EnrichedTransaction {
	return domain.EnrichedTransaction{
		Transaction: domain.Transaction{ID: id, CustomerID: customer.ID, ProductID: product.ID},
		Customer:    customer,
		Product:     product,
	}
}

func TestEligibilityValidator_CheckCreate(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.Transaction
		product   domain.Product
		customer  domain.Customer
		existing  []domain.EnrichedTransaction
		wantErr   error
	}{
		{
			name:      "first account for a personal customer",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P1"},
			product:   savings,
			customer:  personal,
		},
		{
			name:      "same account product again",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P1"},
			product:   savings,
			customer:  personal,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, savings)},
			wantErr:   apperrors.ErrDuplicateAccount,
		},
		{
			name:      "different account product is allowed",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P3"},
			product:   checking,
			customer:  personal,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, savings)},
		},
		{
			name:      "same credit product again",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P2"},
			product:   credit,
			customer:  personal,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, credit)},
			wantErr:   apperrors.ErrDuplicateCredit,
		},
		{
			name:      "second different credit is allowed",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P5"},
			product:   credit2,
			customer:  personal,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, credit)},
		},
		{
			name:      "first credit next to an account",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P2"},
			product:   credit,
			customer:  personal,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, savings)},
		},
		{
			name:      "business customer with savings",
			candidate: domain.Transaction{CustomerID: "B1", ProductID: "P1"},
			product:   savings,
			customer:  business,
			wantErr:   apperrors.ErrRestrictedProductForBusiness,
		},
		{
			name:      "business customer with fixed-term",
			candidate: domain.Transaction{CustomerID: "B1", ProductID: "P4"},
			product:   fixedTerm,
			customer:  business,
			existing:  []domain.EnrichedTransaction{enriched("T9", business, checking)},
			wantErr:   apperrors.ErrRestrictedProductForBusiness,
		},
		{
			name:      "business customer with checking",
			candidate: domain.Transaction{CustomerID: "B1", ProductID: "P3"},
			product:   checking,
			customer:  business,
		},
		{
			name:      "business customer repeating a checking account",
			candidate: domain.Transaction{CustomerID: "B1", ProductID: "P3"},
			product:   checking,
			customer:  business,
			existing:  []domain.EnrichedTransaction{enriched("T9", business, checking)},
		},
		{
			name:      "another customer's transaction is ignored",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P1"},
			product:   savings,
			customer:  personal,
			existing: []domain.EnrichedTransaction{
				enriched("T7", domain.Customer{ID: "C2", TypeCustomer: domain.PersonalCustomer}, savings),
			},
		},
		{
			name:      "duplicate account is reported before the business restriction",
			candidate: domain.Transaction{CustomerID: "C1", ProductID: "P1"},
			product:   savings,
			customer:  business,
			existing:  []domain.EnrichedTransaction{enriched("T1", personal, savings)},
			wantErr:   apperrors.ErrDuplicateAccount,
		},
	}

	validator := services.NewEligibilityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.CheckCreate(tt.candidate, tt.product, tt.customer, tt.existing)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
