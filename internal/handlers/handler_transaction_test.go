package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	portssvc "github.com/SscSPs/bank_transaction_service/internal/core/ports/services"
	"github.com/SscSPs/bank_transaction_service/internal/dto"
	"github.com/SscSPs/bank_transaction_service/internal/handlers"
	"github.com/SscSPs/bank_transaction_service/internal/middleware"
	"github.com/SscSPs/bank_transaction_service/internal/platform/config"
	"github.com/SscSPs/bank_transaction_service/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Create(ctx context.Context, candidate domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Update(ctx context.Context, patch domain.Transaction, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, patch, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Delete(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) FindByIDWithCustomer(ctx context.Context, id string) (*domain.EnrichedTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrichedTransaction), args.Error(1)
}

func (m *MockTransactionService) FindAllWithDetail(ctx context.Context) ([]domain.EnrichedTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedTransaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupSuite() {
	suite.Require().NoError(validation.Register())
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockService = new(MockTransactionService)
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Transaction: suite.mockService,
	})
}

func (suite *TransactionHandlerTestSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestFindAll() {
	suite.mockService.On("FindAll", mock.Anything).Return([]domain.Transaction{
		{ID: "T1", CustomerID: "C1", ProductID: "P1", AvailableBalance: decimal.RequireFromString("10.5")},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/transaction/findAll", "")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("T1", body[0].ID)
	suite.True(body[0].AvailableBalance.Equal(decimal.RequireFromString("10.5")))
}

func (suite *TransactionHandlerTestSuite) TestFindAll_EmptyIsArray() {
	suite.mockService.On("FindAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	w := suite.serve(http.MethodGet, "/transaction/findAll", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestFindByID_NotFound() {
	suite.mockService.On("FindByID", mock.Anything, "T404").Return(nil, apperrors.ErrTransactionNotFound).Once()

	w := suite.serve(http.MethodGet, "/transaction/find/T404", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("TRANSACTION_NOT_FOUND", suite.decodeError(w).Code)
}

func (suite *TransactionHandlerTestSuite) TestCreate_Success() {
	retirement := civil.Date{Year: 2027, Month: 6, Day: 30}
	expected := domain.Transaction{
		CustomerID:              "C1",
		ProductID:               "P2",
		AccountNumber:           "001-9",
		MovementLimit:           4,
		CreditLimit:             decimal.RequireFromString("5000"),
		AvailableBalance:        decimal.RequireFromString("0"),
		MaintenanceCommission:   decimal.RequireFromString("1.5"),
		RetirementDateFixedTerm: &retirement,
	}
	created := expected
	created.ID = "txn-1"

	suite.mockService.On("Create", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.CustomerID == "C1" && tx.ProductID == "P2" && tx.MovementLimit == 4 &&
			tx.CreditLimit.Equal(expected.CreditLimit) &&
			tx.RetirementDateFixedTerm != nil && *tx.RetirementDateFixedTerm == retirement
	})).Return(&created, nil).Once()

	w := suite.serve(http.MethodPost, "/transaction/create", `{
		"customerId": "C1",
		"productId": "P2",
		"accountNumber": "001-9",
		"movementLimit": 4,
		"creditLimit": 5000,
		"availableBalance": "0",
		"maintenanceCommission": 1.5,
		"retirementDateFixedTerm": "2027-06-30"
	}`)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("txn-1", body.ID)
	suite.Contains(w.Body.String(), `"retirementDateFixedTerm":"2027-06-30"`)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreate_InvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customerId":`},
		{"missing customer", `{"productId":"P1"}`},
		{"negative balance", `{"customerId":"C1","productId":"P1","availableBalance":"-1"}`},
		{"negative movement limit", `{"customerId":"C1","productId":"P1","movementLimit":-2}`},
		{"bad date", `{"customerId":"C1","productId":"P1","retirementDateFixedTerm":"31/12/2027"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.serve(http.MethodPost, "/transaction/create", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal("INVALID_INPUT", suite.decodeError(w).Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreate_ErrorStatuses() {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.ErrDuplicateAccount, http.StatusConflict, "DUPLICATE_ACCOUNT"},
		{apperrors.ErrDuplicateCredit, http.StatusConflict, "DUPLICATE_CREDIT"},
		{apperrors.ErrRestrictedProductForBusiness, http.StatusUnprocessableEntity, "RESTRICTED_PRODUCT_FOR_BUSINESS"},
		{apperrors.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{apperrors.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{apperrors.Wrap(apperrors.ErrDownstreamUnavailable, errors.New("refused")), http.StatusBadGateway, "DOWNSTREAM_UNAVAILABLE"},
		{apperrors.Wrap(apperrors.ErrPersistenceFailed, errors.New("disk full")), http.StatusInternalServerError, "PERSISTENCE_ERROR"},
		{errors.New("unexpected"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		suite.Run(tt.code, func() {
			suite.mockService.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.serve(http.MethodPost, "/transaction/create", `{"customerId":"C1","productId":"P1"}`)

			suite.Equal(tt.status, w.Code)
			body := suite.decodeError(w)
			suite.Equal(tt.code, body.Code)
			suite.NotContains(body.Error, "disk full")
		})
	}
}

func (suite *TransactionHandlerTestSuite) TestUpdate() {
	updated := &domain.Transaction{ID: "T1", CustomerID: "C1", ProductID: "P3", MovementLimit: 9}
	suite.mockService.On("Update", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.ProductID == "P3" && tx.MovementLimit == 9 && tx.CustomerID == ""
	}), "T1").Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/transaction/update/T1", `{"productId":"P3","movementLimit":9}`)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("C1", body.CustomerID)
	suite.Equal("P3", body.ProductID)
}

func (suite *TransactionHandlerTestSuite) TestUpdate_NotFound() {
	suite.mockService.On("Update", mock.Anything, mock.Anything, "T404").Return(nil, apperrors.ErrTransactionNotFound).Once()

	w := suite.serve(http.MethodPut, "/transaction/update/T404", `{"productId":"P3"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDelete_ReturnsEmptyTransaction() {
	suite.mockService.On("Delete", mock.Anything, "T1").Return(&domain.Transaction{}, nil).Once()

	w := suite.serve(http.MethodDelete, "/transaction/delete/T1", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.ID)
	suite.Empty(body.CustomerID)
	suite.Nil(body.RetirementDateFixedTerm)
}

func (suite *TransactionHandlerTestSuite) TestFindAllWithDetail() {
	suite.mockService.On("FindAllWithDetail", mock.Anything).Return([]domain.EnrichedTransaction{
		{
			Transaction: domain.Transaction{ID: "T1", CustomerID: "C1", ProductID: "P1"},
			Customer:    domain.Customer{ID: "C1", TypeCustomer: domain.PersonalCustomer},
			Product:     domain.Product{ID: "P1", IndProduct: domain.AccountProduct},
			Deposits:    []domain.Deposit{{ID: "d1", TransactionID: "T1"}},
		},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/transaction/findAllWithDetail", "")

	suite.Equal(http.StatusOK, w.Code)
	var body []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("T1", body[0]["id"])
	suite.Len(body[0]["deposit"], 1)
	suite.Equal([]any{}, body[0]["withdrawal"])
	suite.Equal([]any{}, body[0]["signatories"])
	suite.Contains(body[0], "customer")
	suite.Contains(body[0], "product")
}

func (suite *TransactionHandlerTestSuite) TestFindAllWithDetail_DownstreamFailure() {
	suite.mockService.On("FindAllWithDetail", mock.Anything).
		Return(nil, apperrors.Wrap(apperrors.ErrDownstreamUnavailable, errors.New("timeout"))).Once()

	w := suite.serve(http.MethodGet, "/transaction/findAllWithDetail", "")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestFindByIDWithCustomer() {
	suite.mockService.On("FindByIDWithCustomer", mock.Anything, "T1").Return(&domain.EnrichedTransaction{
		Transaction: domain.Transaction{ID: "T1", CustomerID: "C1"},
		Customer:    domain.Customer{ID: "C1", Name: "Ana"},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/transaction/findByIdWithCustomer/T1", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.EnrichedTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("T1", body.ID)
	suite.Equal("Ana", body.Customer.Name)
}

func (suite *TransactionHandlerTestSuite) TestRequestIDIsEchoed() {
	suite.mockService.On("FindAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transaction/findAll", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal("req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
