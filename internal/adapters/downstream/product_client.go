package downstream

import (
	"context"
	"net/url"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
)

// ProductClient reads products from the product service.
type ProductClient struct {
	baseClient
}

// NewProductClient creates a product service client.
func NewProductClient(baseURL string, s Settings) *ProductClient {
	return &ProductClient{baseClient: newBaseClient("product-service", baseURL, s)}
}

var _ providers.ProductProvider = (*ProductClient)(nil)

// GetProduct fetches a product by id.
func (c *ProductClient) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, "/product/find/"+url.PathEscape(productID), &product, apperrors.ErrProductNotFound); err != nil {
		return nil, err
	}
	return &product, nil
}
