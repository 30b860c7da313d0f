package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
)

// reviewService implements the ReviewSvcFacade interface. It is the state
// machine behind the review lifecycle plus the bulk coordinator built on it.
type reviewService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
	now     func() time.Time
}

// ReviewServiceOption is a functional option for configuring the review service
type ReviewServiceOption func(*reviewService)

// WithReviewClock overrides the clock used for review timestamps.
func WithReviewClock(now func() time.Time) ReviewServiceOption {
	return func(s *reviewService) {
		s.now = now
	}
}

// NewReviewService creates a new review service with the provided options
func NewReviewService(repo portsrepo.TransactionRepository, options ...ReviewServiceOption) portssvc.ReviewSvcFacade {
	svc := &reviewService{
		txnRepo: repo,
		now:     time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reviewService implements the ReviewSvcFacade interface
var _ portssvc.ReviewSvcFacade = (*reviewService)(nil)

func (s *reviewService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *reviewService) ListByStatement(ctx context.Context, statementID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByStatementID(ctx, statementID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for statement",
			slog.String("statement_id", statementID))
		return nil, err
	}
	return FilterAndSort(txns, filter, sort), nil
}

// Approve marks the transaction approved and stamps reviewed_at. Approving
// an already-approved transaction is a no-op success.
func (s *reviewService) Approve(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transition(ctx, transactionID, (*domain.Transaction).Approve)
}

// Reject marks the transaction rejected and stamps reviewed_at.
func (s *reviewService) Reject(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transition(ctx, transactionID, (*domain.Transaction).Reject)
}

func (s *reviewService) transition(ctx context.Context, transactionID string, apply func(*domain.Transaction, time.Time)) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load transaction for review transition",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	apply(txn, s.now())

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to persist review transition",
			slog.String("transaction_id", transactionID),
			slog.String("status", string(txn.Status)))
		return nil, err
	}

	s.LogInfo(ctx, "Review transition applied",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(txn.Status)))
	return txn, nil
}

// Edit applies the supplied fields, snapshots the originally extracted
// description/amount on the first edit, and marks the transaction edited.
// auto_categorized drops to false only when the edit supplies a category.
func (s *reviewService) Edit(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load transaction for edit",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	if err := txn.ApplyEdit(req.ToTransactionEdit(), s.now()); err != nil {
		s.LogError(ctx, err, "Rejected invalid transaction edit",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction edit",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction edited",
		slog.String("transaction_id", transactionID))
	return txn, nil
}

// BulkApprove approves each named transaction independently. Unknown IDs
// are collected as per-ID failures; they never abort the rest of the batch.
func (s *reviewService) BulkApprove(ctx context.Context, transactionIDs []string) (*domain.BulkApproveResult, error) {
	result := &domain.BulkApproveResult{
		Succeeded: make([]string, 0, len(transactionIDs)),
		Failed:    make([]domain.BulkFailure, 0),
	}

	for _, id := range transactionIDs {
		if _, err := s.Approve(ctx, id); err != nil {
			reason := "approval failed"
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				reason = "not found"
			case errors.Is(err, apperrors.ErrConflict):
				reason = "conflicting concurrent update"
			}
			result.Failed = append(result.Failed, domain.BulkFailure{
				TransactionID: id,
				Reason:        reason,
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	s.LogInfo(ctx, "Bulk approval completed",
		slog.Int("requested", len(transactionIDs)),
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}
