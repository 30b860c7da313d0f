package services

import (
	"context"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/SscSPs/statement_review_app/internal/dto"
)

// ReviewReaderSvc defines read operations over transactions under review.
type ReviewReaderSvc interface {
	// GetTransaction retrieves a single transaction by its unique identifier.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListByStatement retrieves a statement's transactions as a filtered,
	// deterministically sorted view. The input set is never mutated.
	ListByStatement(ctx context.Context, statementID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error)
}

// ReviewWriterSvc defines the review-lifecycle transitions.
type ReviewWriterSvc interface {
	// Approve marks a transaction approved. Idempotent.
	Approve(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// Reject marks a transaction rejected. Idempotent.
	Reject(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// Edit applies the supplied fields and marks the transaction edited,
	// preserving the originally extracted description/amount.
	Edit(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
}

// BulkReviewSvc defines bulk review operations with per-item reporting.
type BulkReviewSvc interface {
	// BulkApprove approves each named transaction independently and reports
	// per-ID success/failure; it is never all-or-nothing.
	BulkApprove(ctx context.Context, transactionIDs []string) (*domain.BulkApproveResult, error)
}

// ReviewSvcFacade combines all review-related service interfaces.
type ReviewSvcFacade interface {
	ReviewReaderSvc
	ReviewWriterSvc
	BulkReviewSvc
}
