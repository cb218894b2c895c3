package services

import (
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_transaction_service/internal/core/ports/services"
	"github.com/SscSPs/bank_transaction_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provs providers.ProviderSet) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The aggregation engine is shared by the detail reads and the create pipeline.
	container.Aggregation = NewAggregationService(
		repos.TransactionRepo,
		provs,
		WithJoinConcurrency(cfg.JoinConcurrency),
	)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Aggregation,
		provs.Customers,
		provs.Products,
	)

	return container
}
