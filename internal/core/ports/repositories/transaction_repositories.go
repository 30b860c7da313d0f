package repositories

import (
	"context"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
)

// TransactionRepository defines the persistence operations for Transactions.
// The store guarantees atomic single-record read-modify-write; no
// cross-transaction locking happens above it.
type TransactionRepository interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionsByStatementID(ctx context.Context, statementID string) ([]domain.Transaction, error)
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	// FindTransactionsByMonth returns the transactions whose transaction
	// date falls inside the given calendar month.
	FindTransactionsByMonth(ctx context.Context, year int, month int) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}
