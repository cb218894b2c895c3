package downstream

import (
	"context"

	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
)

// ListClient reads the full record list of one child service, e.g. GET /deposit/findAll.
type ListClient[T domain.ChildRecord] struct {
	baseClient
	path string
}

// NewListClient creates a client for the service named resource ("deposit", "payment", ...).
func NewListClient[T domain.ChildRecord](resource, baseURL string, s Settings) *ListClient[T] {
	return &ListClient[T]{
		baseClient: newBaseClient(resource+"-service", baseURL, s),
		path:       "/" + resource + "/findAll",
	}
}

var (
	_ providers.DepositProvider   = (*ListClient[domain.Deposit])(nil)
	_ providers.SignatoryProvider = (*ListClient[domain.Signatory])(nil)
)

// ListAll returns every record the service holds, in the order it answered with.
func (c *ListClient[T]) ListAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.getJSON(ctx, c.path, &records, nil); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
