package dto

import (
	"time"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string           `json:"transactionID"`
	StatementID         string           `json:"statementID"`
	TransactionDate     string           `json:"transactionDate"` // YYYY-MM-DD
	Description         string           `json:"description"`
	Amount              decimal.Decimal  `json:"amount"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	Reference           string           `json:"reference,omitempty"`
	Category            string           `json:"category"`
	AutoCategorized     bool             `json:"autoCategorized"`
	ConfidenceScore     float64          `json:"confidenceScore"`
	Status              string           `json:"status"`
	ReviewedAt          *time.Time       `json:"reviewedAt"`
	EditedAt            *time.Time       `json:"editedAt"`
	OriginalDescription *string          `json:"originalDescription"`
	OriginalAmount      *decimal.Decimal `json:"originalAmount"`
}

// UpdateTransactionRequest defines the optional fields of an edit.
// Absent fields are left untouched.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
}

// ToTransactionEdit converts the request to the domain edit payload.
func (r UpdateTransactionRequest) ToTransactionEdit() domain.TransactionEdit {
	edit := domain.TransactionEdit{
		Description: r.Description,
		Amount:      r.Amount,
	}
	if r.Category != nil {
		cat := domain.Category(*r.Category)
		edit.Category = &cat
	}
	return edit
}

// BulkApproveRequest names the transactions to approve in one batch.
type BulkApproveRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1"`
}

// BulkFailureResponse reports one failed item of a bulk operation.
type BulkFailureResponse struct {
	TransactionID string `json:"transactionID"`
	Reason        string `json:"reason"`
}

// BulkApproveResponse reports the per-item outcome of a bulk approval.
type BulkApproveResponse struct {
	Succeeded []string              `json:"succeeded"`
	Failed    []BulkFailureResponse `json:"failed"`
}

// ListTransactionsQuery carries the filter/sort query parameters of a
// statement-scoped transaction listing.
type ListTransactionsQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	SortBy   string `form:"sortBy"`
	SortDir  string `form:"sortDir"`
}

// ToFilterAndSort converts the query parameters into domain filter/sort
// specs, defaulting to date descending.
func (q ListTransactionsQuery) ToFilterAndSort() (domain.TransactionFilter, domain.TransactionSort, bool) {
	filter := domain.TransactionFilter{
		Search:   q.Search,
		Category: q.Category,
		Status:   q.Status,
	}

	sort := domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortDescending}
	switch q.SortBy {
	case "", string(domain.SortByDate):
	case string(domain.SortByAmount):
		sort.Field = domain.SortByAmount
	default:
		return filter, sort, false
	}
	switch q.SortDir {
	case "", string(domain.SortDescending):
	case string(domain.SortAscending):
		sort.Direction = domain.SortAscending
	default:
		return filter, sort, false
	}
	return filter, sort, true
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		StatementID:         txn.StatementID,
		TransactionDate:     txn.TransactionDate.Format("2006-01-02"),
		Description:         txn.Description,
		Amount:              txn.Amount,
		Balance:             txn.Balance,
		Reference:           txn.Reference,
		Category:            string(txn.Category),
		AutoCategorized:     txn.AutoCategorized,
		ConfidenceScore:     txn.ConfidenceScore,
		Status:              string(txn.Status),
		ReviewedAt:          txn.ReviewedAt,
		EditedAt:            txn.EditedAt,
		OriginalDescription: txn.OriginalDescription,
		OriginalAmount:      txn.OriginalAmount,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToBulkApproveResponse converts a domain bulk result to its DTO response.
func ToBulkApproveResponse(result *domain.BulkApproveResult) BulkApproveResponse {
	response := BulkApproveResponse{
		Succeeded: result.Succeeded,
		Failed:    make([]BulkFailureResponse, len(result.Failed)),
	}
	for i, f := range result.Failed {
		response.Failed[i] = BulkFailureResponse{
			TransactionID: f.TransactionID,
			Reason:        f.Reason,
		}
	}
	return response
}
