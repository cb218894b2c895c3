package downstream

import (
	"context"
	"net/url"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
)

// CustomerClient reads customers from the customer service.
type CustomerClient struct {
	baseClient
}

// NewCustomerClient creates a customer service client.
func NewCustomerClient(baseURL string, s Settings) *CustomerClient {
	return &CustomerClient{baseClient: newBaseClient("customer-service", baseURL, s)}
}

var _ providers.CustomerProvider = (*CustomerClient)(nil)

// GetCustomer fetches a customer by id.
func (c *CustomerClient) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.getJSON(ctx, "/customer/find/"+url.PathEscape(customerID), &customer, apperrors.ErrCustomerNotFound); err != nil {
		return nil, err
	}
	return &customer, nil
}
