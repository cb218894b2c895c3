package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_transaction_service/internal/core/ports/services"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// DefaultJoinConcurrency bounds how many transactions JoinAll enriches at once.
const DefaultJoinConcurrency = 8

// aggregationService joins transactions with the data the downstream services own.
type aggregationService struct {
	BaseService
	store       portsrepo.TransactionReader
	providers   providers.ProviderSet
	concurrency int
}

// AggregationOption is a functional option for configuring the aggregation service
type AggregationOption func(*aggregationService)

// WithJoinConcurrency sets how many transactions JoinAll enriches in parallel.
// Values below 1 keep the default.
func WithJoinConcurrency(n int) AggregationOption {
	return func(s *aggregationService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewAggregationService creates the aggregation engine over the given store and providers.
func NewAggregationService(store portsrepo.TransactionReader, provs providers.ProviderSet, options ...AggregationOption) portssvc.AggregationSvc {
	svc := &aggregationService{
		store:       store,
		providers:   provs,
		concurrency: DefaultJoinConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AggregationSvc = (*aggregationService)(nil)

// joinStage is one step of the enrichment pipeline. Stages run in order and the
// first error stops the pipeline.
type joinStage struct {
	name string
	run  func(ctx context.Context, et *domain.EnrichedTransaction) error
}

func (s *aggregationService) stages() []joinStage {
	return []joinStage{
		{name: "customer", run: s.attachCustomer},
		{name: "product", run: s.attachProduct},
		{name: "deposits", run: attachChildren(s.providers.Deposits, func(et *domain.EnrichedTransaction, v []domain.Deposit) { et.Deposits = v })},
		{name: "withdrawals", run: attachChildren(s.providers.Withdrawals, func(et *domain.EnrichedTransaction, v []domain.Withdrawal) { et.Withdrawals = v })},
		{name: "payments", run: attachChildren(s.providers.Payments, func(et *domain.EnrichedTransaction, v []domain.Payment) { et.Payments = v })},
		{name: "purchases", run: attachChildren(s.providers.Purchases, func(et *domain.EnrichedTransaction, v []domain.Purchase) { et.Purchases = v })},
		{name: "signatories", run: attachChildren(s.providers.Signatories, func(et *domain.EnrichedTransaction, v []domain.Signatory) { et.Signatories = v })},
	}
}

func (s *aggregationService) attachCustomer(ctx context.Context, et *domain.EnrichedTransaction) error {
	customer, err := s.providers.Customers.GetCustomer(ctx, et.CustomerID)
	if err != nil {
		return err
	}
	et.Customer = *customer
	return nil
}

func (s *aggregationService) attachProduct(ctx context.Context, et *domain.EnrichedTransaction) error {
	product, err := s.providers.Products.GetProduct(ctx, et.ProductID)
	if err != nil {
		return err
	}
	et.Product = *product
	return nil
}

func attachChildren[T domain.ChildRecord](
	provider providers.ChildRecordProvider[T],
	set func(*domain.EnrichedTransaction, []T),
) func(context.Context, *domain.EnrichedTransaction) error {
	return func(ctx context.Context, et *domain.EnrichedTransaction) error {
		records, err := provider.ListAll(ctx)
		if err != nil {
			return err
		}
		set(et, domain.FilterByTransaction(records, et.ID))
		return nil
	}
}

// Join enriches a single transaction.
func (s *aggregationService) Join(ctx context.Context, tx domain.Transaction) (*domain.EnrichedTransaction, error) {
	ctx, span := s.StartSpan(ctx, "aggregation.join", attribute.String("transaction.id", tx.ID))
	defer span.End()

	et := &domain.EnrichedTransaction{Transaction: tx}
	for _, stage := range s.stages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage.run(ctx, et); err != nil {
			err = downstreamError(ctx, err)
			s.HandleSpanError(span, "Failed to join "+stage.name, err)
			s.LogError(ctx, err, "Failed to join transaction",
				slog.String("transaction_id", tx.ID),
				slog.String("stage", stage.name))
			return nil, fmt.Errorf("joining %s for transaction %s: %w", stage.name, tx.ID, err)
		}
	}
	return et, nil
}

// JoinAll enriches every stored transaction. Any single failure fails the whole call.
func (s *aggregationService) JoinAll(ctx context.Context) ([]domain.EnrichedTransaction, error) {
	ctx, span := s.StartSpan(ctx, "aggregation.join_all")
	defer span.End()

	txs, err := s.store.FindAll(ctx)
	if err != nil {
		s.HandleSpanError(span, "Failed to list transactions", err)
		s.LogError(ctx, err, "Failed to list transactions for join")
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	return s.joinEach(ctx, txs)
}

// JoinAllForCustomer enriches the whole store, then keeps the customer's entries.
// The full join is kept so a broken record anywhere still fails the call.
func (s *aggregationService) JoinAllForCustomer(ctx context.Context, customerID string) ([]domain.EnrichedTransaction, error) {
	all, err := s.JoinAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EnrichedTransaction, 0)
	for _, et := range all {
		if et.CustomerID == customerID {
			out = append(out, et)
		}
	}
	return out, nil
}

func (s *aggregationService) joinEach(ctx context.Context, txs []domain.Transaction) ([]domain.EnrichedTransaction, error) {
	results := make([]domain.EnrichedTransaction, len(txs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, tx := range txs {
		g.Go(func() error {
			et, err := s.Join(gctx, tx)
			if err != nil {
				return err
			}
			results[i] = *et
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Joined transactions", slog.Int("count", len(results)))
	return results, nil
}

// downstreamError classifies a provider failure. Typed application errors pass through,
// cancellation by the caller is returned as is and anything else is DownstreamUnavailable.
func downstreamError(ctx context.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrDownstreamUnavailable, err)
}
