package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	"github.com/SscSPs/statement_review_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID:   "txn-1",
		StatementID:     "stmt-1",
		TransactionDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Description:     "GROCERY STORE 4421",
		Amount:          decimal.NewFromInt(-50),
		Category:        domain.CategoryGroceries,
		AutoCategorized: true,
		ConfidenceScore: 0.91,
		Status:          domain.StatusPending,
	}
}

func TestApprove_StampsStatusAndReviewedAt(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	txn.Approve(now)

	assert.Equal(t, domain.StatusApproved, txn.Status)
	require.NotNil(t, txn.ReviewedAt)
	assert.Equal(t, now, *txn.ReviewedAt)
	assert.Equal(t, now, txn.UpdatedAt)
	assert.Nil(t, txn.EditedAt)
}

func TestApprove_ApproveTwiceEqualsApproveOnce(t *testing.T) {
	txn := pendingTransaction()
	first := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	txn.Approve(first)
	once := txn
	txn.Approve(second)

	assert.Equal(t, once, txn)
	require.NotNil(t, txn.ReviewedAt)
	assert.Equal(t, first, *txn.ReviewedAt)
}

func TestReject_FromAnyNonRejectedState(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	for _, start := range []domain.ReviewStatus{domain.StatusPending, domain.StatusApproved, domain.StatusEdited} {
		txn := pendingTransaction()
		txn.Status = start

		txn.Reject(now)

		assert.Equal(t, domain.StatusRejected, txn.Status, "starting from %s", start)
		require.NotNil(t, txn.ReviewedAt)
		assert.Equal(t, now, *txn.ReviewedAt)
	}
}

func TestReject_RejectTwiceEqualsRejectOnce(t *testing.T) {
	txn := pendingTransaction()
	first := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	txn.Reject(first)
	once := txn
	txn.Reject(first.Add(time.Hour))

	assert.Equal(t, once, txn)
	assert.Equal(t, first, *txn.ReviewedAt)
}

func TestApplyEdit_FirstEditSnapshotsOriginals(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	newDesc := "Weekly groceries"
	newAmount := decimal.NewFromInt(-45)

	err := txn.ApplyEdit(domain.TransactionEdit{Description: &newDesc, Amount: &newAmount}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEdited, txn.Status)
	assert.Equal(t, newDesc, txn.Description)
	assert.True(t, newAmount.Equal(txn.Amount))
	require.NotNil(t, txn.OriginalDescription)
	require.NotNil(t, txn.OriginalAmount)
	assert.Equal(t, "GROCERY STORE 4421", *txn.OriginalDescription)
	assert.True(t, decimal.NewFromInt(-50).Equal(*txn.OriginalAmount))
	require.NotNil(t, txn.EditedAt)
	assert.Equal(t, now, *txn.EditedAt)
	// Editing only description/amount must not clear auto-categorization.
	assert.True(t, txn.AutoCategorized)
}

func TestApplyEdit_SecondEditKeepsFirstSnapshot(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	first := decimal.NewFromInt(-45)
	require.NoError(t, txn.ApplyEdit(domain.TransactionEdit{Amount: &first}, now))

	second := decimal.NewFromInt(-40)
	require.NoError(t, txn.ApplyEdit(domain.TransactionEdit{Amount: &second}, now.Add(time.Hour)))

	assert.True(t, second.Equal(txn.Amount))
	require.NotNil(t, txn.OriginalAmount)
	assert.True(t, decimal.NewFromInt(-50).Equal(*txn.OriginalAmount), "original must reflect the extracted value, not the first edit")
	require.NotNil(t, txn.OriginalDescription)
	assert.Equal(t, "GROCERY STORE 4421", *txn.OriginalDescription)
}

func TestApplyEdit_SnapshotsAmountWhenDescriptionAlreadyCaptured(t *testing.T) {
	// A record written by an older extractor may carry one original but
	// not the other; the unset one must still be captured.
	txn := pendingTransaction()
	captured := "GROCERY STORE"
	txn.OriginalDescription = &captured
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	newAmount := decimal.NewFromInt(-45)

	err := txn.ApplyEdit(domain.TransactionEdit{Amount: &newAmount}, now)

	require.NoError(t, err)
	require.NotNil(t, txn.OriginalAmount)
	assert.True(t, decimal.NewFromInt(-50).Equal(*txn.OriginalAmount))
	require.NotNil(t, txn.OriginalDescription)
	assert.Equal(t, captured, *txn.OriginalDescription, "already-captured original must not be overwritten")
}

func TestApplyEdit_CategoryChangeClearsAutoCategorized(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	category := domain.CategoryFoodDining

	err := txn.ApplyEdit(domain.TransactionEdit{Category: &category}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFoodDining, txn.Category)
	assert.False(t, txn.AutoCategorized)
	// An edit that never touched description/amount still snapshots them.
	require.NotNil(t, txn.OriginalDescription)
	assert.Equal(t, "GROCERY STORE 4421", *txn.OriginalDescription)
}

func TestApplyEdit_UnknownCategoryRejectedBeforeAnyChange(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	newDesc := "should not stick"
	bad := domain.Category("Gambling")

	err := txn.ApplyEdit(domain.TransactionEdit{Description: &newDesc, Category: &bad}, now)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, domain.StatusPending, txn.Status)
	assert.Equal(t, "GROCERY STORE 4421", txn.Description)
	assert.Nil(t, txn.OriginalDescription)
	assert.Nil(t, txn.EditedAt)
}

func TestApplyEdit_EmptyEditStillMarksEdited(t *testing.T) {
	txn := pendingTransaction()
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	err := txn.ApplyEdit(domain.TransactionEdit{}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEdited, txn.Status)
	assert.Equal(t, "GROCERY STORE 4421", txn.Description)
	assert.True(t, decimal.NewFromInt(-50).Equal(txn.Amount))
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range domain.AllCategories {
		assert.True(t, c.IsValid(), "category %s", c)
	}
	assert.False(t, domain.Category("").IsValid())
	assert.False(t, domain.Category("food & dining").IsValid(), "category match is case sensitive")
	assert.False(t, domain.Category("Gambling").IsValid())
}

func TestReviewStatusIsValid(t *testing.T) {
	for _, s := range domain.AllStatuses {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, domain.ReviewStatus("Approved").IsValid())
	assert.False(t, domain.ReviewStatus("deleted").IsValid())
}
