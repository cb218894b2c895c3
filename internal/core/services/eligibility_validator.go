package services

import (
	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
)

// EligibilityInput is everything the creation rules look at.
type EligibilityInput struct {
	Candidate domain.Transaction
	Product   domain.Product
	Customer  domain.Customer
	// Existing holds the customer's current transactions, already enriched.
	Existing []domain.EnrichedTransaction
}

type eligibilityRule struct {
	violation *apperrors.AppError
	violated  func(in EligibilityInput) bool
}

// EligibilityValidator decides whether a candidate transaction may be created.
// It performs no I/O.
type EligibilityValidator struct {
	rules []eligibilityRule
}

// NewEligibilityValidator returns a validator with the bank's creation rules, in evaluation order.
func NewEligibilityValidator() *EligibilityValidator {
	return &EligibilityValidator{
		rules: []eligibilityRule{
			{
				violation: apperrors.ErrDuplicateAccount,
				violated:  holdsSameProduct(domain.Product.IsAccount),
			},
			{
				violation: apperrors.ErrDuplicateCredit,
				violated:  holdsSameProduct(domain.Product.IsCredit),
			},
			{
				violation: apperrors.ErrRestrictedProductForBusiness,
				violated: func(in EligibilityInput) bool {
					return in.Product.IsSavingsOrFixedTerm() && in.Customer.IsBusiness()
				},
			},
		},
	}
}

// holdsSameProduct matches an existing personal-customer transaction on the candidate's
// product id. Only the same product is blocked, not a second product of the same kind.
func holdsSameProduct(isKind func(domain.Product) bool) func(EligibilityInput) bool {
	return func(in EligibilityInput) bool {
		for _, existing := range in.Existing {
			if existing.CustomerID != in.Candidate.CustomerID {
				continue
			}
			if isKind(existing.Product) &&
				existing.Customer.IsPersonal() &&
				existing.Product.ID == in.Candidate.ProductID {
				return true
			}
		}
		return false
	}
}

// CheckCreate returns the first violated rule as an *apperrors.AppError, or nil if eligible.
func (v *EligibilityValidator) CheckCreate(candidate domain.Transaction, product domain.Product, customer domain.Customer, existing []domain.EnrichedTransaction) error {
	in := EligibilityInput{
		Candidate: candidate,
		Product:   product,
		Customer:  customer,
		Existing:  existing,
	}
	for _, rule := range v.rules {
		if rule.violated(in) {
			return rule.violation
		}
	}
	return nil
}
