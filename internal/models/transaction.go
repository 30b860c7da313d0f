package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReviewStatus is the stored review state of a transaction row.
type ReviewStatus string

// Category is the stored classification label of a transaction row.
type Category string

// Transaction is the DB row shape of one extracted ledger line.
type Transaction struct {
	TransactionID       string           `json:"transactionID"` // Primary Key (UUID)
	StatementID         string           `json:"statementID"`   // FK -> statements.statement_id (Not Null)
	TransactionDate     time.Time        `json:"transactionDate"`
	Description         string           `json:"description"`
	Amount              decimal.Decimal  `json:"amount"`
	Balance             *decimal.Decimal `json:"balance"`   // Nullable
	Reference           string           `json:"reference"` // Nullable
	Category            Category         `json:"category"`
	AutoCategorized     bool             `json:"autoCategorized"`
	ConfidenceScore     float64          `json:"confidenceScore"`
	Status              ReviewStatus     `json:"status"`
	ReviewedAt          *time.Time       `json:"reviewedAt"`          // Nullable
	EditedAt            *time.Time       `json:"editedAt"`            // Nullable
	OriginalDescription *string          `json:"originalDescription"` // Nullable, write-once
	OriginalAmount      *decimal.Decimal `json:"originalAmount"`      // Nullable, write-once
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}
