package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo portsrepo.TransactionRepository) portssvc.AnalyticsService {
	return &analyticsService{
		txnRepo: repo,
	}
}

// Ensure analyticsService implements the AnalyticsService interface
var _ portssvc.AnalyticsService = (*analyticsService)(nil)

// Snapshot recomputes totals plus category and status breakdowns from the
// current transaction state. An empty statementID scopes to everything.
func (s *analyticsService) Snapshot(ctx context.Context, statementID string) (*domain.AnalyticsSnapshot, error) {
	var (
		txns []domain.Transaction
		err  error
	)
	if statementID == "" {
		txns, err = s.txnRepo.FindAllTransactions(ctx)
	} else {
		txns, err = s.txnRepo.FindTransactionsByStatementID(ctx, statementID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for analytics",
			slog.String("statement_id", statementID))
		return nil, fmt.Errorf("failed to load transactions for analytics: %w", err)
	}

	snapshot := Aggregate(txns)

	s.LogInfo(ctx, "Analytics snapshot computed",
		slog.String("statement_id", statementID),
		slog.Int("transaction_count", snapshot.TotalTransactions))
	return &snapshot, nil
}

// MonthlySummary recomputes the per-day bucketed view of one calendar month.
func (s *analyticsService) MonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindTransactionsByMonth(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly summary",
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to load transactions for monthly summary: %w", err)
	}

	summary := AggregateMonth(txns, year, month)

	s.LogInfo(ctx, "Monthly summary computed",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("transaction_count", summary.TransactionCount))
	return &summary, nil
}
