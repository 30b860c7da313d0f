package services

import (
	"sort"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
)

// Aggregate computes an analytics snapshot over a transaction set. It is a
// pure function of its input: no side effects, safe to call concurrently
// against the same slice. An empty set yields all-zero aggregates.
//
// Expense figures are signed throughout: total_expenses is negative (or
// zero) and net = income + expenses.
func Aggregate(txns []domain.Transaction) domain.AnalyticsSnapshot {
	snapshot := domain.AnalyticsSnapshot{
		TotalTransactions: len(txns),
		CategoryBreakdown: make(map[domain.Category]domain.CategoryTotals),
		StatusBreakdown:   make(map[domain.ReviewStatus]int, len(domain.AllStatuses)),
	}
	for _, status := range domain.AllStatuses {
		snapshot.StatusBreakdown[status] = 0
	}

	for _, txn := range txns {
		if txn.Amount.IsPositive() {
			snapshot.TotalIncome = snapshot.TotalIncome.Add(txn.Amount)
		} else if txn.Amount.IsNegative() {
			snapshot.TotalExpenses = snapshot.TotalExpenses.Add(txn.Amount)
		}

		totals := snapshot.CategoryBreakdown[txn.Category]
		totals.Total = totals.Total.Add(txn.Amount)
		totals.Count++
		snapshot.CategoryBreakdown[txn.Category] = totals

		snapshot.StatusBreakdown[txn.Status]++
	}

	snapshot.NetAmount = snapshot.TotalIncome.Add(snapshot.TotalExpenses)
	return snapshot
}

// AggregateMonth computes the per-day bucketed summary of one calendar
// month. Bucketing normalizes to UTC before reading calendar-date fields:
// dates are stored as UTC midnight, and a scanned timestamp may carry the
// process's local Location, which must never shift a transaction across
// days or out of its month.
func AggregateMonth(txns []domain.Transaction, year int, month int) domain.MonthlySummary {
	summary := domain.MonthlySummary{
		Year:           year,
		Month:          month,
		DailyBreakdown: make(map[int]domain.DailySummary),
	}

	for _, txn := range txns {
		y, m, day := txn.TransactionDate.UTC().Date()
		if y != year || int(m) != month {
			continue
		}

		bucket := summary.DailyBreakdown[day]
		if txn.Amount.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			bucket.Income = bucket.Income.Add(txn.Amount)
		} else if txn.Amount.IsNegative() {
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			bucket.Expenses = bucket.Expenses.Add(txn.Amount)
		}
		bucket.Count++
		summary.DailyBreakdown[day] = bucket
		summary.TransactionCount++
	}

	summary.NetAmount = summary.TotalIncome.Add(summary.TotalExpenses)
	return summary
}

// TopCategories ranks the snapshot's categories by total descending, ties
// broken by category name ascending, and returns at most n rows.
func TopCategories(snapshot *domain.AnalyticsSnapshot, n int) []domain.CategorySummary {
	ranked := make([]domain.CategorySummary, 0, len(snapshot.CategoryBreakdown))
	for category, totals := range snapshot.CategoryBreakdown {
		ranked = append(ranked, domain.CategorySummary{
			Category: category,
			Total:    totals.Total,
			Count:    totals.Count,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		cmp := ranked[i].Total.Cmp(ranked[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
