package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/SscSPs/statement_review_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []domain.Transaction {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}
	return []domain.Transaction{
		{
			TransactionID:   "txn-a",
			TransactionDate: day(1),
			Description:     "Salary March",
			Amount:          decimal.NewFromInt(2500),
			Category:        domain.CategoryIncome,
			Status:          domain.StatusApproved,
		},
		{
			TransactionID:   "txn-b",
			TransactionDate: day(2),
			Description:     "GROCERY STORE 4421",
			Amount:          decimal.NewFromInt(-50),
			Category:        domain.CategoryGroceries,
			Status:          domain.StatusPending,
		},
		{
			TransactionID:   "txn-c",
			TransactionDate: day(2),
			Description:     "Corner grocery run",
			Amount:          decimal.NewFromInt(-15),
			Category:        domain.CategoryGroceries,
			Status:          domain.StatusEdited,
		},
		{
			TransactionID:   "txn-d",
			TransactionDate: day(5),
			Description:     "Cinema tickets",
			Amount:          decimal.NewFromInt(-30),
			Category:        domain.CategoryEntertainment,
			Status:          domain.StatusPending,
		},
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestFilterAndSort_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{Search: "grocery"},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortAscending})

	assert.Equal(t, []string{"txn-b", "txn-c"}, ids(got))
}

func TestFilterAndSort_SearchTrimsWhitespace(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{Search: "  GROCERY  "},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortAscending})

	assert.Len(t, got, 2)
}

func TestFilterAndSort_CategoryAndStatusCompose(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{Category: string(domain.CategoryGroceries), Status: string(domain.StatusPending)},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortAscending})

	assert.Equal(t, []string{"txn-b"}, ids(got))
}

func TestFilterAndSort_AllSentinelDisablesFilter(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{Category: domain.FilterAll, Status: domain.FilterAll},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortAscending})

	assert.Len(t, got, 4)
}

func TestFilterAndSort_CategoryFilterIsExact(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{Category: "groceries"},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortAscending})

	assert.Empty(t, got)
}

func TestFilterAndSort_SortByAmountAscending(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{},
		domain.TransactionSort{Field: domain.SortByAmount, Direction: domain.SortAscending})

	assert.Equal(t, []string{"txn-b", "txn-d", "txn-c", "txn-a"}, ids(got))
}

func TestFilterAndSort_DateDescendingTieBreaksByIDAscending(t *testing.T) {
	got := services.FilterAndSort(filterFixture(),
		domain.TransactionFilter{},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortDescending})

	// txn-b and txn-c share 2024-03-02; the tie-break stays ID ascending
	// even though the sort direction is descending.
	assert.Equal(t, []string{"txn-d", "txn-b", "txn-c", "txn-a"}, ids(got))
}

func TestFilterAndSort_EqualAmountsTieBreakByID(t *testing.T) {
	txns := filterFixture()
	for i := range txns {
		txns[i].Amount = decimal.NewFromInt(-10)
	}

	got := services.FilterAndSort(txns,
		domain.TransactionFilter{},
		domain.TransactionSort{Field: domain.SortByAmount, Direction: domain.SortDescending})

	assert.Equal(t, []string{"txn-a", "txn-b", "txn-c", "txn-d"}, ids(got))
}

func TestFilterAndSort_InputNeverMutated(t *testing.T) {
	txns := filterFixture()
	original := ids(txns)

	_ = services.FilterAndSort(txns,
		domain.TransactionFilter{Search: "grocery"},
		domain.TransactionSort{Field: domain.SortByAmount, Direction: domain.SortDescending})

	assert.Equal(t, original, ids(txns))
}

func TestFilterAndSort_EmptyInput(t *testing.T) {
	got := services.FilterAndSort(nil,
		domain.TransactionFilter{Search: "anything"},
		domain.TransactionSort{Field: domain.SortByDate, Direction: domain.SortDescending})

	require.NotNil(t, got)
	assert.Empty(t, got)
}
