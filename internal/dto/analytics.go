package dto

import (
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalsResponse is one category's aggregate in an analytics response.
type CategoryTotalsResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CategorySummaryResponse is one row of the ranked top-categories view.
type CategorySummaryResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// AnalyticsResponse is the on-demand analytics snapshot returned to the API.
// All expense figures are signed (negative), so net = income + expenses.
type AnalyticsResponse struct {
	TotalTransactions int                               `json:"totalTransactions"`
	TotalIncome       decimal.Decimal                   `json:"totalIncome"`
	TotalExpenses     decimal.Decimal                   `json:"totalExpenses"`
	NetAmount         decimal.Decimal                   `json:"netAmount"`
	CategoryBreakdown map[string]CategoryTotalsResponse `json:"categoryBreakdown"`
	StatusBreakdown   map[string]int                    `json:"statusBreakdown"`
	TopCategories     []CategorySummaryResponse         `json:"topCategories"`
}

// DailySummaryResponse is one calendar day's bucket of a monthly summary.
type DailySummaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Count    int             `json:"count"`
}

// MonthlySummaryResponse is the per-day bucketed view of one month.
type MonthlySummaryResponse struct {
	Year             int                          `json:"year"`
	Month            int                          `json:"month"`
	TotalIncome      decimal.Decimal              `json:"totalIncome"`
	TotalExpenses    decimal.Decimal              `json:"totalExpenses"`
	NetAmount        decimal.Decimal              `json:"netAmount"`
	TransactionCount int                          `json:"transactionCount"`
	DailyBreakdown   map[int]DailySummaryResponse `json:"dailyBreakdown"`
}

// ToAnalyticsResponse converts a domain snapshot plus its ranked category
// view to the API response.
func ToAnalyticsResponse(snapshot *domain.AnalyticsSnapshot, topCategories []domain.CategorySummary) AnalyticsResponse {
	response := AnalyticsResponse{
		TotalTransactions: snapshot.TotalTransactions,
		TotalIncome:       snapshot.TotalIncome,
		TotalExpenses:     snapshot.TotalExpenses,
		NetAmount:         snapshot.NetAmount,
		CategoryBreakdown: make(map[string]CategoryTotalsResponse, len(snapshot.CategoryBreakdown)),
		StatusBreakdown:   make(map[string]int, len(snapshot.StatusBreakdown)),
		TopCategories:     make([]CategorySummaryResponse, len(topCategories)),
	}
	for category, totals := range snapshot.CategoryBreakdown {
		response.CategoryBreakdown[string(category)] = CategoryTotalsResponse{
			Total: totals.Total,
			Count: totals.Count,
		}
	}
	for status, count := range snapshot.StatusBreakdown {
		response.StatusBreakdown[string(status)] = count
	}
	for i, c := range topCategories {
		response.TopCategories[i] = CategorySummaryResponse{
			Category: string(c.Category),
			Total:    c.Total,
			Count:    c.Count,
		}
	}
	return response
}

// ToMonthlySummaryResponse converts a domain monthly summary to the API response.
func ToMonthlySummaryResponse(summary *domain.MonthlySummary) MonthlySummaryResponse {
	response := MonthlySummaryResponse{
		Year:             summary.Year,
		Month:            summary.Month,
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		NetAmount:        summary.NetAmount,
		TransactionCount: summary.TransactionCount,
		DailyBreakdown:   make(map[int]DailySummaryResponse, len(summary.DailyBreakdown)),
	}
	for day, bucket := range summary.DailyBreakdown {
		response.DailyBreakdown[day] = DailySummaryResponse{
			Income:   bucket.Income,
			Expenses: bucket.Expenses,
			Count:    bucket.Count,
		}
	}
	return response
}
