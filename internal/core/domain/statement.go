package domain

import "time"

// StatementStatus is the processing state of an uploaded statement.
type StatementStatus string

const (
	StatementProcessing StatementStatus = "processing"
	StatementCompleted  StatementStatus = "completed"
	StatementFailed     StatementStatus = "failed"
)

// Statement represents a single uploaded bank document and its metadata.
// It owns 1..N transactions; deleting a statement cascades to them.
type Statement struct {
	StatementID   string          `json:"statementID"` // Primary Key (UUID)
	Filename      string          `json:"filename"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"` // Nullable
	PeriodStart   *time.Time      `json:"periodStart"`
	PeriodEnd     *time.Time      `json:"periodEnd"`
	UploadedAt    time.Time       `json:"uploadedAt"`
	ProcessedAt   *time.Time      `json:"processedAt"`
	Status        StatementStatus `json:"status"`
}
