package services

import (
	"sort"
	"strings"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
)

// FilterAndSort produces a filtered, deterministically ordered view over a
// transaction set. The input slice is never mutated. Passes compose in a
// fixed order: search, category filter, status filter, sort. Ties are
// broken by transaction ID ascending.
func FilterAndSort(txns []domain.Transaction, filter domain.TransactionFilter, txnSort domain.TransactionSort) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, txn := range txns {
		if search != "" && !strings.Contains(strings.ToLower(txn.Description), search) {
			continue
		}
		if !passThrough(filter.Category) && string(txn.Category) != filter.Category {
			continue
		}
		if !passThrough(filter.Status) && string(txn.Status) != filter.Status {
			continue
		}
		out = append(out, txn)
	}

	sortTransactions(out, txnSort)
	return out
}

func passThrough(value string) bool {
	return value == "" || value == domain.FilterAll
}

func sortTransactions(txns []domain.Transaction, txnSort domain.TransactionSort) {
	descending := txnSort.Direction == domain.SortDescending

	sort.Slice(txns, func(i, j int) bool {
		var cmp int
		switch txnSort.Field {
		case domain.SortByAmount:
			cmp = txns[i].Amount.Cmp(txns[j].Amount)
		default: // domain.SortByDate
			switch {
			case txns[i].TransactionDate.Before(txns[j].TransactionDate):
				cmp = -1
			case txns[i].TransactionDate.After(txns[j].TransactionDate):
				cmp = 1
			}
		}
		if descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		// Tie-break by ID ascending regardless of direction, so pagination
		// over equal keys stays reproducible.
		return txns[i].TransactionID < txns[j].TransactionID
	})
}
