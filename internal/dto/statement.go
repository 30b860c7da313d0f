package dto

import (
	"time"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IngestTransactionRow is one extracted ledger line of an ingest request.
// Dates use the YYYY-MM-DD calendar form; time-of-day carries no meaning.
type IngestTransactionRow struct {
	TransactionDate string           `json:"transactionDate" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	Balance         *decimal.Decimal `json:"balance"`
	Reference       string           `json:"reference"`
	Category        string           `json:"category" binding:"required"`
	ConfidenceScore float64          `json:"confidenceScore"`
}

// IngestStatementRequest carries one statement's metadata plus the
// extraction collaborator's transaction rows.
type IngestStatementRequest struct {
	Filename      string                 `json:"filename" binding:"required"`
	BankName      string                 `json:"bankName" binding:"required"`
	AccountNumber string                 `json:"accountNumber"`
	PeriodStart   *string                `json:"periodStart"` // YYYY-MM-DD
	PeriodEnd     *string                `json:"periodEnd"`   // YYYY-MM-DD
	Transactions  []IngestTransactionRow `json:"transactions" binding:"required,min=1,dive"`
}

// StatementResponse defines the data returned for a statement.
type StatementResponse struct {
	StatementID   string     `json:"statementID"`
	Filename      string     `json:"filename"`
	BankName      string     `json:"bankName"`
	AccountNumber string     `json:"accountNumber,omitempty"`
	PeriodStart   *time.Time `json:"periodStart"`
	PeriodEnd     *time.Time `json:"periodEnd"`
	UploadedAt    time.Time  `json:"uploadedAt"`
	ProcessedAt   *time.Time `json:"processedAt"`
	Status        string     `json:"status"`
}

// IngestStatementResponse confirms a processed ingest request.
type IngestStatementResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	StatementID      string `json:"statementID"`
	BankName         string `json:"bankName"`
	TransactionCount int    `json:"transactionCount"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		StatementID:   s.StatementID,
		Filename:      s.Filename,
		BankName:      s.BankName,
		AccountNumber: s.AccountNumber,
		PeriodStart:   s.PeriodStart,
		PeriodEnd:     s.PeriodEnd,
		UploadedAt:    s.UploadedAt,
		ProcessedAt:   s.ProcessedAt,
		Status:        string(s.Status),
	}
}

// ToStatementResponses converts a slice of domain.Statement to []StatementResponse.
func ToStatementResponses(statements []domain.Statement) []StatementResponse {
	responses := make([]StatementResponse, len(statements))
	for i, s := range statements {
		responses[i] = ToStatementResponse(&s)
	}
	return responses
}
