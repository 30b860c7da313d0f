package models

import "time"

// Statement is the DB row shape of one uploaded bank statement.
type Statement struct {
	StatementID   string     `json:"statementID"` // Primary Key (UUID)
	Filename      string     `json:"filename"`
	BankName      string     `json:"bankName"`
	AccountNumber string     `json:"accountNumber"` // Nullable
	PeriodStart   *time.Time `json:"periodStart"`   // Nullable
	PeriodEnd     *time.Time `json:"periodEnd"`     // Nullable
	UploadedAt    time.Time  `json:"uploadedAt"`
	ProcessedAt   *time.Time `json:"processedAt"` // Nullable
	Status        string     `json:"status"`
}
