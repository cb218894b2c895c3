package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_transaction_service/internal/core/ports/services"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// transactionService implements the TransactionSvcFacade interface.
// Nothing serialises concurrent creates for one customer: two requests can both
// pass eligibility before either is saved.
type transactionService struct {
	BaseService
	store       portsrepo.TransactionStore
	aggregation portssvc.AggregationSvc
	customers   providers.CustomerProvider
	products    providers.ProductProvider
	validator   *EligibilityValidator
	newID       func() string
}

// TransactionOption is a functional option for configuring the transaction service
type TransactionOption func(*transactionService)

// WithIDGenerator replaces the UUID generator used for new transactions.
func WithIDGenerator(gen func() string) TransactionOption {
	return func(s *transactionService) {
		s.newID = gen
	}
}

// WithEligibilityValidator replaces the default creation rules.
func WithEligibilityValidator(v *EligibilityValidator) TransactionOption {
	return func(s *transactionService) {
		s.validator = v
	}
}

// NewTransactionService creates the transaction orchestrator.
func NewTransactionService(
	store portsrepo.TransactionStore,
	aggregation portssvc.AggregationSvc,
	customers providers.CustomerProvider,
	products providers.ProductProvider,
	options ...TransactionOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		store:       store,
		aggregation: aggregation,
		customers:   customers,
		products:    products,
		validator:   NewEligibilityValidator(),
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	s.LogInfo(ctx, "Listing transactions")
	txs, err := s.store.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	if txs == nil {
		return []domain.Transaction{}, nil
	}
	return txs, nil
}

func (s *transactionService) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Transaction not found", slog.String("transaction_id", id))
			return nil, apperrors.ErrTransactionNotFound
		}
		s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", id))
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	return tx, nil
}

// createState is threaded through the create pipeline.
type createState struct {
	candidate domain.Transaction
	existing  []domain.EnrichedTransaction
	product   *domain.Product
	customer  *domain.Customer
}

type createStage struct {
	name string
	run  func(ctx context.Context, st *createState) error
}

func (s *transactionService) createStages() []createStage {
	return []createStage{
		{name: "load existing transactions", run: s.loadExisting},
		{name: "load product", run: s.loadProduct},
		{name: "load customer", run: s.loadCustomer},
		{name: "check eligibility", run: s.checkEligibility},
		{name: "persist", run: s.persistCandidate},
	}
}

func (s *transactionService) loadExisting(ctx context.Context, st *createState) error {
	existing, err := s.aggregation.JoinAllForCustomer(ctx, st.candidate.CustomerID)
	if err != nil {
		return err
	}
	st.existing = existing
	return nil
}

func (s *transactionService) loadProduct(ctx context.Context, st *createState) error {
	product, err := s.products.GetProduct(ctx, st.candidate.ProductID)
	if err != nil {
		return downstreamError(ctx, err)
	}
	st.product = product
	return nil
}

func (s *transactionService) loadCustomer(ctx context.Context, st *createState) error {
	customer, err := s.customers.GetCustomer(ctx, st.candidate.CustomerID)
	if err != nil {
		return downstreamError(ctx, err)
	}
	st.customer = customer
	return nil
}

func (s *transactionService) checkEligibility(_ context.Context, st *createState) error {
	return s.validator.CheckCreate(st.candidate, *st.product, *st.customer, st.existing)
}

func (s *transactionService) persistCandidate(ctx context.Context, st *createState) error {
	st.candidate.ID = s.newID()
	if err := s.store.Save(ctx, st.candidate); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	return nil
}

// Create runs the create pipeline and returns the stored transaction.
// Eligibility violations are returned as the matching *apperrors.AppError.
func (s *transactionService) Create(ctx context.Context, candidate domain.Transaction) (*domain.Transaction, error) {
	s.LogInfo(ctx, "Creating transaction",
		slog.String("customer_id", candidate.CustomerID),
		slog.String("product_id", candidate.ProductID))

	ctx, span := s.StartSpan(ctx, "transaction.create",
		attribute.String("customer.id", candidate.CustomerID),
		attribute.String("product.id", candidate.ProductID))
	defer span.End()

	st := &createState{candidate: candidate}
	for _, stage := range s.createStages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		span.AddEvent(stage.name)
		if err := stage.run(ctx, st); err != nil {
			s.HandleSpanError(span, "Failed to "+stage.name, err)
			if errors.Is(err, apperrors.ErrValidation) {
				s.LogWarn(ctx, "Transaction rejected",
					slog.String("customer_id", candidate.CustomerID),
					slog.String("product_id", candidate.ProductID),
					slog.String("reason", err.Error()))
			} else {
				s.LogError(ctx, err, "Failed to create transaction",
					slog.String("customer_id", candidate.CustomerID),
					slog.String("stage", stage.name))
			}
			return nil, err
		}
	}

	s.LogInfo(ctx, "Transaction created successfully", slog.String("transaction_id", st.candidate.ID))
	created := st.candidate
	return &created, nil
}

// Update overlays the mutable fields of patch onto the stored transaction.
func (s *transactionService) Update(ctx context.Context, patch domain.Transaction, id string) (*domain.Transaction, error) {
	s.LogInfo(ctx, "Updating transaction", slog.String("transaction_id", id))

	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(patch)
	if err := s.store.Save(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to save updated transaction", slog.String("transaction_id", id))
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	return existing, nil
}

// Delete removes the transaction. The acknowledgment is an empty Transaction, not the deleted record.
func (s *transactionService) Delete(ctx context.Context, id string) (*domain.Transaction, error) {
	s.LogInfo(ctx, "Deleting transaction", slog.String("transaction_id", id))

	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", id))
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailed, err)
	}
	return &domain.Transaction{}, nil
}

func (s *transactionService) FindByIDWithCustomer(ctx context.Context, id string) (*domain.EnrichedTransaction, error) {
	tx, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.aggregation.Join(ctx, *tx)
}

func (s *transactionService) FindAllWithDetail(ctx context.Context) ([]domain.EnrichedTransaction, error) {
	s.LogInfo(ctx, "Listing transactions with detail")
	return s.aggregation.JoinAll(ctx)
}
