package domain

// ProductIndicator separates credit products from deposit accounts.
type ProductIndicator int

const (
	CreditProduct  ProductIndicator = 1
	AccountProduct ProductIndicator = 2
)

// ProductType is the account subtype of a deposit product.
type ProductType int

const (
	SavingsAccount   ProductType = 1
	CheckingAccount  ProductType = 2
	FixedTermAccount ProductType = 3
)

// Product is owned by the product service and read-only here.
type Product struct {
	ID              string           `json:"id"`
	IndProduct      ProductIndicator `json:"indProduct"`
	DescIndProduct  string           `json:"descIndProduct"`
	TypeProduct     ProductType      `json:"typeProduct"`
	DescTypeProduct string           `json:"descTypeProduct"`
}

// IsAccount reports whether the product is a deposit account.
func (p Product) IsAccount() bool { return p.IndProduct == AccountProduct }

// IsCredit reports whether the product is a credit line.
func (p Product) IsCredit() bool { return p.IndProduct == CreditProduct }

// IsSavingsOrFixedTerm reports whether the product is a savings or fixed-term account.
func (p Product) IsSavingsOrFixedTerm() bool {
	return p.IsAccount() && (p.TypeProduct == SavingsAccount || p.TypeProduct == FixedTermAccount)
}
