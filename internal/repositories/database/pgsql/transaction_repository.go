package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	"github.com/SscSPs/statement_review_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	transaction_id, statement_id, transaction_date, description, amount, balance,
	reference, category, auto_categorized, confidence_score, status,
	reviewed_at, edited_at, original_description, original_amount, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		StatementID:         d.StatementID,
		TransactionDate:     d.TransactionDate,
		Description:         d.Description,
		Amount:              d.Amount,
		Balance:             d.Balance,
		Reference:           d.Reference,
		Category:            models.Category(d.Category),
		AutoCategorized:     d.AutoCategorized,
		ConfidenceScore:     d.ConfidenceScore,
		Status:              models.ReviewStatus(d.Status),
		ReviewedAt:          d.ReviewedAt,
		EditedAt:            d.EditedAt,
		OriginalDescription: d.OriginalDescription,
		OriginalAmount:      d.OriginalAmount,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		StatementID:         m.StatementID,
		TransactionDate:     m.TransactionDate,
		Description:         m.Description,
		Amount:              m.Amount,
		Balance:             m.Balance,
		Reference:           m.Reference,
		Category:            domain.Category(m.Category),
		AutoCategorized:     m.AutoCategorized,
		ConfidenceScore:     m.ConfidenceScore,
		Status:              domain.ReviewStatus(m.Status),
		ReviewedAt:          m.ReviewedAt,
		EditedAt:            m.EditedAt,
		OriginalDescription: m.OriginalDescription,
		OriginalAmount:      m.OriginalAmount,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.StatementID,
		&m.TransactionDate,
		&m.Description,
		&m.Amount,
		&m.Balance,
		&m.Reference,
		&m.Category,
		&m.AutoCategorized,
		&m.ConfidenceScore,
		&m.Status,
		&m.ReviewedAt,
		&m.EditedAt,
		&m.OriginalDescription,
		&m.OriginalAmount,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsByStatementID retrieves all transactions belonging to a statement.
func (r *PgxTransactionRepository) FindTransactionsByStatementID(ctx context.Context, statementID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE statement_id = $1
		ORDER BY transaction_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for statement %s: %w", statementID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// FindAllTransactions retrieves every transaction across all statements.
func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY transaction_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// FindTransactionsByMonth retrieves the transactions dated inside one
// calendar month. The range is computed on the date, so time-of-day
// components can never leak a row into a neighboring month.
func (r *PgxTransactionRepository) FindTransactionsByMonth(ctx context.Context, year int, month int) ([]domain.Transaction, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_date >= $1 AND transaction_date < $2
		ORDER BY transaction_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// UpdateTransaction persists the mutable fields of a transaction in a
// single UPDATE, so a failure never leaves a partial field write behind.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET description = $2,
			amount = $3,
			category = $4,
			auto_categorized = $5,
			status = $6,
			reviewed_at = $7,
			edited_at = $8,
			original_description = $9,
			original_amount = $10,
			updated_at = $11
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.Category,
		m.AutoCategorized,
		m.Status,
		m.ReviewedAt,
		m.EditedAt,
		m.OriginalDescription,
		m.OriginalAmount,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "40001" { // serialization_failure
			return fmt.Errorf("%w: transaction %s", apperrors.ErrConflict, m.TransactionID)
		}
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating transaction rows: %w", err)
	}
	return txns, nil
}
