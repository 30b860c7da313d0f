package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ReviewStatus is the human audit state of a transaction.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
	StatusEdited   ReviewStatus = "edited"
)

// AllStatuses lists every review status in a stable order.
// Status breakdowns report all of these, including zero counts.
var AllStatuses = []ReviewStatus{StatusPending, StatusApproved, StatusRejected, StatusEdited}

// IsValid reports whether s is one of the known review statuses.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusEdited:
		return true
	}
	return false
}

// Category is one of the fixed classification labels applied to a transaction.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryShopping       Category = "Shopping"
	CategoryTransport      Category = "Transport"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryIncome         Category = "Income"
	CategoryTransfer       Category = "Transfer"
	CategoryInvestment     Category = "Investment"
	CategoryLoanPayment    Category = "Loan Payment"
	CategoryInsurance      Category = "Insurance"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryGroceries      Category = "Groceries"
	CategoryOther          Category = "Other"
)

// AllCategories lists every category in the canonical order used wherever
// an ordering is needed.
var AllCategories = []Category{
	CategoryFoodDining,
	CategoryShopping,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBillsUtilities,
	CategoryHealthcare,
	CategoryIncome,
	CategoryTransfer,
	CategoryInvestment,
	CategoryLoanPayment,
	CategoryInsurance,
	CategoryEducation,
	CategoryTravel,
	CategoryPersonalCare,
	CategoryGroceries,
	CategoryOther,
}

var validCategories = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = struct{}{}
	}
	return m
}()

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// Transaction represents one ledger line extracted from a bank statement.
type Transaction struct {
	TransactionID   string           `json:"transactionID"` // Primary Key (UUID)
	StatementID     string           `json:"statementID"`   // FK -> Statement.statementID (Not Null)
	TransactionDate time.Time        `json:"transactionDate"`
	Description     string           `json:"description"`
	Amount          decimal.Decimal  `json:"amount"`    // Signed: positive = income, negative = expense
	Balance         *decimal.Decimal `json:"balance"`   // Running balance as printed on the statement; informational only
	Reference       string           `json:"reference"` // Nullable

	// Categorization
	Category        Category `json:"category"`
	AutoCategorized bool     `json:"autoCategorized"`
	ConfidenceScore float64  `json:"confidenceScore"`

	// Review & approval
	Status              ReviewStatus     `json:"status"`
	ReviewedAt          *time.Time       `json:"reviewedAt"`
	EditedAt            *time.Time       `json:"editedAt"`
	OriginalDescription *string          `json:"originalDescription"` // Write-once snapshot of the extracted value
	OriginalAmount      *decimal.Decimal `json:"originalAmount"`      // Write-once snapshot of the extracted value

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TransactionEdit carries the optional fields of an edit. Nil fields are
// left untouched on the transaction.
type TransactionEdit struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *Category
}

// Approve moves the transaction to the approved state. Approving an
// already-approved transaction changes nothing, so repeating the call
// is indistinguishable from making it once.
func (t *Transaction) Approve(now time.Time) {
	if t.Status == StatusApproved {
		return
	}
	t.Status = StatusApproved
	t.ReviewedAt = &now
	t.UpdatedAt = now
}

// Reject moves the transaction to the rejected state. Rejecting an
// already-rejected transaction changes nothing.
func (t *Transaction) Reject(now time.Time) {
	if t.Status == StatusRejected {
		return
	}
	t.Status = StatusRejected
	t.ReviewedAt = &now
	t.UpdatedAt = now
}

// ApplyEdit applies the supplied fields and moves the transaction to the
// edited state. Each original_* field is snapshotted by the first edit
// that finds it unset; once populated it is never overwritten. The fields
// are guarded independently so a record with only one original recorded
// still gets the other captured. Validation failures happen before any
// field is touched.
func (t *Transaction) ApplyEdit(edit TransactionEdit, now time.Time) error {
	if edit.Category != nil && !edit.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, string(*edit.Category))
	}

	if t.OriginalDescription == nil {
		desc := t.Description
		t.OriginalDescription = &desc
	}
	if t.OriginalAmount == nil {
		amt := t.Amount
		t.OriginalAmount = &amt
	}

	if edit.Description != nil {
		t.Description = *edit.Description
	}
	if edit.Amount != nil {
		t.Amount = *edit.Amount
	}
	if edit.Category != nil {
		t.Category = *edit.Category
		t.AutoCategorized = false
	}

	t.Status = StatusEdited
	t.EditedAt = &now
	t.UpdatedAt = now
	return nil
}
