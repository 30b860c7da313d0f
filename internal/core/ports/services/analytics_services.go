package services

import (
	"context"

	"github.com/SscSPs/statement_review_app/internal/core/domain"
)

// AnalyticsService defines operations for deriving aggregate views over
// the reviewed transaction set. Snapshots are recomputed on every call.
type AnalyticsService interface {
	// Snapshot computes totals plus category and status breakdowns.
	// An empty statementID scopes the snapshot to all transactions.
	Snapshot(ctx context.Context, statementID string) (*domain.AnalyticsSnapshot, error)

	// MonthlySummary computes the per-day bucketed view of one calendar month.
	MonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error)
}
