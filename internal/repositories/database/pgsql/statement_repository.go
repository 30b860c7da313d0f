package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	"github.com/SscSPs/statement_review_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for statement data.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepository {
	return &PgxStatementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStatementRepository implements portsrepo.StatementRepository
var _ portsrepo.StatementRepository = (*PgxStatementRepository)(nil)

// Helper to convert domain.Statement to models.Statement for DB storage
func toModelStatement(d domain.Statement) models.Statement {
	return models.Statement{
		StatementID:   d.StatementID,
		Filename:      d.Filename,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		PeriodStart:   d.PeriodStart,
		PeriodEnd:     d.PeriodEnd,
		UploadedAt:    d.UploadedAt,
		ProcessedAt:   d.ProcessedAt,
		Status:        string(d.Status),
	}
}

// Helper to convert models.Statement from DB to domain.Statement
func toDomainStatement(m models.Statement) domain.Statement {
	return domain.Statement{
		StatementID:   m.StatementID,
		Filename:      m.Filename,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		PeriodStart:   m.PeriodStart,
		PeriodEnd:     m.PeriodEnd,
		UploadedAt:    m.UploadedAt,
		ProcessedAt:   m.ProcessedAt,
		Status:        domain.StatementStatus(m.Status),
	}
}

// SaveStatement inserts a statement and its transactions within a single
// DB transaction, so an ingest either lands completely or not at all.
func (r *PgxStatementRepository) SaveStatement(ctx context.Context, statement domain.Statement, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	m := toModelStatement(statement)
	statementQuery := `
		INSERT INTO statements (
			statement_id, filename, bank_name, account_number,
			period_start, period_end, uploaded_at, processed_at, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, statementQuery,
		m.StatementID,
		m.Filename,
		m.BankName,
		m.AccountNumber,
		m.PeriodStart,
		m.PeriodEnd,
		m.UploadedAt,
		m.ProcessedAt,
		m.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: statement with ID %s already exists", apperrors.ErrDuplicate, m.StatementID)
		}
		return fmt.Errorf("failed to insert statement %s: %w", m.StatementID, err)
	}

	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	for _, txn := range transactions {
		mt := toModelTransaction(txn)
		batch.Queue(txnQuery,
			mt.TransactionID,
			mt.StatementID,
			mt.TransactionDate,
			mt.Description,
			mt.Amount,
			mt.Balance,
			mt.Reference,
			mt.Category,
			mt.AutoCategorized,
			mt.ConfidenceScore,
			mt.Status,
			mt.ReviewedAt,
			mt.EditedAt,
			mt.OriginalDescription,
			mt.OriginalAmount,
			mt.CreatedAt,
			mt.UpdatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert transactions for statement %s: %w", m.StatementID, err)
	}

	return r.Commit(ctx, tx)
}

// FindStatementByID retrieves a statement by its ID.
func (r *PgxStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.Statement, error) {
	query := `
		SELECT statement_id, filename, bank_name, account_number,
			period_start, period_end, uploaded_at, processed_at, status
		FROM statements
		WHERE statement_id = $1;
	`
	var m models.Statement
	err := r.Pool.QueryRow(ctx, query, statementID).Scan(
		&m.StatementID,
		&m.Filename,
		&m.BankName,
		&m.AccountNumber,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.UploadedAt,
		&m.ProcessedAt,
		&m.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: statement %s", apperrors.ErrNotFound, statementID)
		}
		return nil, fmt.Errorf("failed to find statement by ID %s: %w", statementID, err)
	}

	statement := toDomainStatement(m)
	return &statement, nil
}

// ListStatements retrieves a page of statements, newest upload first.
func (r *PgxStatementRepository) ListStatements(ctx context.Context, limit int, offset int) ([]domain.Statement, error) {
	query := `
		SELECT statement_id, filename, bank_name, account_number,
			period_start, period_end, uploaded_at, processed_at, status
		FROM statements
		ORDER BY uploaded_at DESC, statement_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer rows.Close()

	statements := make([]domain.Statement, 0)
	for rows.Next() {
		var m models.Statement
		err := rows.Scan(
			&m.StatementID,
			&m.Filename,
			&m.BankName,
			&m.AccountNumber,
			&m.PeriodStart,
			&m.PeriodEnd,
			&m.UploadedAt,
			&m.ProcessedAt,
			&m.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement row: %w", err)
		}
		statements = append(statements, toDomainStatement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating statement rows: %w", err)
	}
	return statements, nil
}

// DeleteStatement removes a statement. The transactions FK is declared
// ON DELETE CASCADE, so the statement's transactions go with it.
func (r *PgxStatementRepository) DeleteStatement(ctx context.Context, statementID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM statements WHERE statement_id = $1;`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement %s: %w", statementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: statement %s", apperrors.ErrNotFound, statementID)
	}
	return nil
}
