package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReviewService ---
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReviewService) ListByStatement(ctx context.Context, statementID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error) {
	args := m.Called(ctx, statementID, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReviewService) Reject(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReviewService) Edit(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReviewService) BulkApprove(ctx context.Context, transactionIDs []string) (*domain.BulkApproveResult, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkApproveResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReviewSvcFacade = (*MockReviewService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReviewService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockReviewService)

	v1 := suite.router.Group("/api/v1")
	registerTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) approvedTxn(id string) *domain.Transaction {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Transaction{
		TransactionID:   id,
		StatementID:     "stmt-1",
		TransactionDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Description:     "GROCERY STORE 4421",
		Amount:          decimal.NewFromInt(-50),
		Category:        domain.CategoryGroceries,
		Status:          domain.StatusApproved,
		ReviewedAt:      &now,
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	suite.mockService.On("GetTransaction", mock.Anything, "txn-1").Return(suite.approvedTxn("txn-1"), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/txn-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("txn-1", body.TransactionID)
	suite.Equal("2024-03-02", body.TransactionDate)
	suite.Equal("approved", body.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockService.On("GetTransaction", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListByStatement_DefaultsToDateDescending() {
	suite.mockService.On("ListByStatement", mock.Anything, "stmt-1",
		domain.TransactionFilter{},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortDescending},
	).Return([]domain.Transaction{*suite.approvedTxn("txn-1")}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/statement/stmt-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListByStatement_PassesFilters() {
	suite.mockService.On("ListByStatement", mock.Anything, "stmt-1",
		domain.TransactionFilter{Search: "grocery", Category: "Groceries", Status: "pending"},
		domain.TransactionSort{Field: domain.SortByAmount, Direction: domain.SortAscending},
	).Return([]domain.Transaction{}, nil).Once()

	url := "/api/v1/transactions/statement/stmt-1?search=grocery&category=Groceries&status=pending&sortBy=amount&sortDir=asc"
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListByStatement_InvalidSortRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/statement/stmt-1?sortBy=description", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListByStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestApprove_Success() {
	suite.mockService.On("Approve", mock.Anything, "txn-1").Return(suite.approvedTxn("txn-1"), nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/txn-1/approve", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestApprove_Conflict() {
	suite.mockService.On("Approve", mock.Anything, "txn-1").Return(nil, apperrors.ErrConflict).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/txn-1/approve", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	desc := "Weekly groceries"
	edited := suite.approvedTxn("txn-1")
	edited.Status = domain.StatusEdited
	edited.Description = desc

	suite.mockService.On("Edit", mock.Anything, "txn-1", mock.MatchedBy(func(r dto.UpdateTransactionRequest) bool {
		return r.Description != nil && *r.Description == desc
	})).Return(edited, nil).Once()

	payload, _ := json.Marshal(dto.UpdateTransactionRequest{Description: &desc})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/txn-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("edited", body.Status)
	suite.Equal(desc, body.Description)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_ValidationError() {
	bad := "Gambling"
	suite.mockService.On("Edit", mock.Anything, "txn-1", mock.AnythingOfType("dto.UpdateTransactionRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	payload, _ := json.Marshal(dto.UpdateTransactionRequest{Category: &bad})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/txn-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestBulkApprove_ReportsPerItemOutcome() {
	result := &domain.BulkApproveResult{
		Succeeded: []string{"txn-1"},
		Failed:    []domain.BulkFailure{{TransactionID: "missing", Reason: "not found"}},
	}
	suite.mockService.On("BulkApprove", mock.Anything, []string{"txn-1", "missing"}).Return(result, nil).Once()

	payload, _ := json.Marshal(dto.BulkApproveRequest{TransactionIDs: []string{"txn-1", "missing"}})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/bulk-approve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.BulkApproveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]string{"txn-1"}, body.Succeeded)
	suite.Require().Len(body.Failed, 1)
	suite.Equal("not found", body.Failed[0].Reason)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestBulkApprove_EmptyListRejected() {
	payload := []byte(`{"transactionIDs": []}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/bulk-approve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "BulkApprove", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
