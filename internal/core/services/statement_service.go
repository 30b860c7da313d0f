package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_review_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

const (
	defaultStatementPageSize = 50
	maxStatementPageSize     = 100
)

// statementService implements the StatementSvcFacade interface
type statementService struct {
	BaseService
	statementRepo portsrepo.StatementRepository
	now           func() time.Time
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementClock overrides the clock used for ingestion timestamps.
func WithStatementClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(repo portsrepo.StatementRepository, options ...StatementServiceOption) portssvc.StatementSvcFacade {
	svc := &statementService{
		statementRepo: repo,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure statementService implements the StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// IngestStatement persists a statement and the extraction collaborator's
// transaction rows in a single atomic write. Each row enters the review
// lifecycle as pending with its extracted description/amount snapshotted
// as the write-once originals. A bad row fails the whole request before
// anything is persisted.
func (s *statementService) IngestStatement(ctx context.Context, req dto.IngestStatementRequest) (*domain.Statement, []domain.Transaction, error) {
	now := s.now()

	periodStart, err := parseOptionalDate(req.PeriodStart)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid periodStart: %v", apperrors.ErrValidation, err)
	}
	periodEnd, err := parseOptionalDate(req.PeriodEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid periodEnd: %v", apperrors.ErrValidation, err)
	}

	statement := domain.Statement{
		StatementID:   uuid.NewString(),
		Filename:      req.Filename,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		UploadedAt:    now,
		ProcessedAt:   &now,
		Status:        domain.StatementCompleted,
	}

	txns := make([]domain.Transaction, len(req.Transactions))
	for i, row := range req.Transactions {
		txnDate, err := time.Parse(dateLayout, row.TransactionDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: transaction %d has malformed date %q", apperrors.ErrValidation, i, row.TransactionDate)
		}
		category := domain.Category(row.Category)
		if !category.IsValid() {
			return nil, nil, fmt.Errorf("%w: transaction %d has unknown category %q", apperrors.ErrValidation, i, row.Category)
		}

		desc := row.Description
		amt := row.Amount
		txns[i] = domain.Transaction{
			TransactionID:       uuid.NewString(),
			StatementID:         statement.StatementID,
			TransactionDate:     txnDate,
			Description:         row.Description,
			Amount:              row.Amount,
			Balance:             row.Balance,
			Reference:           row.Reference,
			Category:            category,
			AutoCategorized:     true,
			ConfidenceScore:     row.ConfidenceScore,
			Status:              domain.StatusPending,
			OriginalDescription: &desc,
			OriginalAmount:      &amt,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
	}

	if err := s.statementRepo.SaveStatement(ctx, statement, txns); err != nil {
		s.LogError(ctx, err, "Failed to save ingested statement",
			slog.String("statement_id", statement.StatementID),
			slog.String("bank_name", statement.BankName))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Statement ingested",
		slog.String("statement_id", statement.StatementID),
		slog.String("bank_name", statement.BankName),
		slog.Int("transaction_count", len(txns)))
	return &statement, txns, nil
}

func (s *statementService) GetStatement(ctx context.Context, statementID string) (*domain.Statement, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find statement by ID",
				slog.String("statement_id", statementID))
		}
		return nil, err
	}
	return statement, nil
}

func (s *statementService) ListStatements(ctx context.Context, limit int, offset int) ([]domain.Statement, error) {
	if limit <= 0 {
		limit = defaultStatementPageSize
	} else if limit > maxStatementPageSize {
		limit = maxStatementPageSize
	}
	if offset < 0 {
		offset = 0
	}

	statements, err := s.statementRepo.ListStatements(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statements")
		return nil, err
	}
	return statements, nil
}

// DeleteStatement removes a statement; the store cascades the delete to
// the statement's transactions.
func (s *statementService) DeleteStatement(ctx context.Context, statementID string) error {
	if err := s.statementRepo.DeleteStatement(ctx, statementID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete statement",
				slog.String("statement_id", statementID))
		}
		return err
	}

	s.LogInfo(ctx, "Statement deleted", slog.String("statement_id", statementID))
	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
