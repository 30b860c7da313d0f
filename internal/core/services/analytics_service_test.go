package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.AnalyticsService
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AnalyticsServiceTestSuite) TestSnapshot_AllTransactions() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "a", Amount: decimal.NewFromInt(100), Category: domain.CategoryIncome, Status: domain.StatusApproved},
		{TransactionID: "b", Amount: decimal.NewFromInt(-40), Category: domain.CategoryShopping, Status: domain.StatusPending},
	}

	suite.mockRepo.On("FindAllTransactions", ctx).Return(txns, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(2, snapshot.TotalTransactions)
	suite.True(decimal.NewFromInt(60).Equal(snapshot.NetAmount))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionsByStatementID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSnapshot_ScopedToStatement() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "a", StatementID: "stmt-1", Amount: decimal.NewFromInt(-10), Category: domain.CategoryOther, Status: domain.StatusPending},
	}

	suite.mockRepo.On("FindTransactionsByStatementID", ctx, "stmt-1").Return(txns, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, "stmt-1")

	suite.Require().NoError(err)
	suite.Equal(1, snapshot.TotalTransactions)
	suite.True(decimal.NewFromInt(-10).Equal(snapshot.TotalExpenses))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAllTransactions", mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSnapshot_EmptySet() {
	ctx := context.Background()

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(0, snapshot.TotalTransactions)
	suite.True(snapshot.TotalIncome.IsZero())
	suite.True(snapshot.TotalExpenses.IsZero())
	suite.True(snapshot.NetAmount.IsZero())
	suite.Len(snapshot.StatusBreakdown, len(domain.AllStatuses))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestSnapshot_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAllTransactions", ctx).Return(nil, expectedErr).Once()

	snapshot, err := suite.service.Snapshot(ctx, "")

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_Success() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "a", TransactionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100), Category: domain.CategoryIncome, Status: domain.StatusApproved},
		{TransactionID: "b", TransactionDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-25), Category: domain.CategoryFoodDining, Status: domain.StatusPending},
	}

	suite.mockRepo.On("FindTransactionsByMonth", ctx, 2024, 3).Return(txns, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2024, 3)

	suite.Require().NoError(err)
	suite.Equal(2024, summary.Year)
	suite.Equal(3, summary.Month)
	suite.Equal(2, summary.TransactionCount)
	suite.True(decimal.NewFromInt(75).Equal(summary.NetAmount))
	suite.Len(summary.DailyBreakdown, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_InvalidMonth() {
	ctx := context.Background()

	for _, month := range []int{0, 13, -1} {
		summary, err := suite.service.MonthlySummary(ctx, 2024, month)

		suite.Require().Error(err, "month %d", month)
		suite.Nil(summary)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionsByMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindTransactionsByMonth", ctx, 2024, 3).Return(nil, expectedErr).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2024, 3)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
