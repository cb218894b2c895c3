package services_test

import (
	"context"

	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockTransactionStore is a mock type for the TransactionStore interface
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionStore) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionStore) Save(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerProvider is a mock type for the CustomerProvider interface
type MockCustomerProvider struct {
	mock.Mock
}

func (m *MockCustomerProvider) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockProductProvider is a mock type for the ProductProvider interface
type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// MockChildProvider is a mock for any of the list-all child record providers
type MockChildProvider[T domain.ChildRecord] struct {
	mock.Mock
}

func (m *MockChildProvider[T]) ListAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// MockAggregationSvc is a mock type for the AggregationSvc interface
type MockAggregationSvc struct {
	mock.Mock
}

func (m *MockAggregationSvc) Join(ctx context.Context, tx domain.Transaction) (*domain.EnrichedTransaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrichedTransaction), args.Error(1)
}

func (m *MockAggregationSvc) JoinAll(ctx context.Context) ([]domain.EnrichedTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedTransaction), args.Error(1)
}

func (m *MockAggregationSvc) JoinAllForCustomer(ctx context.Context, customerID string) ([]domain.EnrichedTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedTransaction), args.Error(1)
}
