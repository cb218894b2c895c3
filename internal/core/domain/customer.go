package domain

// CustomerType classifies a customer as a person or a company.
type CustomerType int

const (
	PersonalCustomer CustomerType = 1
	BusinessCustomer CustomerType = 2
)

// Customer is owned by the customer service and read-only here.
type Customer struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	LastName         string       `json:"lastName"`
	DocNumber        string       `json:"docNumber"`
	TypeCustomer     CustomerType `json:"typeCustomer"`
	DescTypeCustomer string       `json:"descTypeCustomer"`
}

// IsPersonal reports whether the customer is an individual.
func (c Customer) IsPersonal() bool { return c.TypeCustomer == PersonalCustomer }

// IsBusiness reports whether the customer is a company.
func (c Customer) IsBusiness() bool { return c.TypeCustomer == BusinessCustomer }
