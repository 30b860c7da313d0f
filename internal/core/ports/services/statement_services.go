package services

import (
	"context"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/SscSPs/statement_review_app/internal/dto"
)

// StatementReaderSvc defines read operations for statement data.
type StatementReaderSvc interface {
	// GetStatement retrieves a specific statement by its unique identifier.
	GetStatement(ctx context.Context, statementID string) (*domain.Statement, error)

	// ListStatements retrieves a paginated list of statements, newest first.
	ListStatements(ctx context.Context, limit int, offset int) ([]domain.Statement, error)
}

// StatementWriterSvc defines write operations for statement data.
type StatementWriterSvc interface {
	// IngestStatement persists a statement together with the extraction
	// collaborator's transaction rows, atomically. Every row enters the
	// review lifecycle as pending with its original values snapshotted.
	IngestStatement(ctx context.Context, req dto.IngestStatementRequest) (*domain.Statement, []domain.Transaction, error)

	// DeleteStatement removes a statement; its transactions cascade with it.
	DeleteStatement(ctx context.Context, statementID string) error
}

// StatementSvcFacade combines all statement-related service interfaces.
type StatementSvcFacade interface {
	StatementReaderSvc
	StatementWriterSvc
}
