package domain

import "github.com/shopspring/decimal"

// CategoryTotals accumulates the transactions of one category.
// Total is signed, so expense-heavy categories carry negative totals.
type CategoryTotals struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CategorySummary is one row of a ranked category view.
type CategorySummary struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// AnalyticsSnapshot is a derived aggregate view over a transaction set.
// It is recomputed on demand and never persisted.
type AnalyticsSnapshot struct {
	TotalTransactions int             `json:"totalTransactions"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"` // Signed: negative or zero
	NetAmount         decimal.Decimal `json:"netAmount"`     // TotalIncome + TotalExpenses

	// CategoryBreakdown omits categories with no transactions.
	CategoryBreakdown map[Category]CategoryTotals `json:"categoryBreakdown"`
	// StatusBreakdown always carries all four statuses.
	StatusBreakdown map[ReviewStatus]int `json:"statusBreakdown"`
}

// DailySummary buckets one calendar day of a monthly view.
type DailySummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"` // Signed: negative or zero
	Count    int             `json:"count"`
}

// MonthlySummary is the per-day bucketed view of one calendar month.
type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	TransactionCount int             `json:"transactionCount"`
	// DailyBreakdown is keyed by day-of-month (1..31); days with no
	// transactions are absent.
	DailyBreakdown map[int]DailySummary `json:"dailyBreakdown"`
}
