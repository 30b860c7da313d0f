package repositories

import (
	"context"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
)

// StatementRepository defines the persistence operations for Statements.
// Saving a Statement implies saving its transactions atomically, and
// deleting one cascades to its transactions.
type StatementRepository interface {
	SaveStatement(ctx context.Context, statement domain.Statement, transactions []domain.Transaction) error
	FindStatementByID(ctx context.Context, statementID string) (*domain.Statement, error)
	ListStatements(ctx context.Context, limit int, offset int) ([]domain.Statement, error)
	DeleteStatement(ctx context.Context, statementID string) error
}
