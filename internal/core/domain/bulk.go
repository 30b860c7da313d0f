package domain

// BulkFailure reports why one transaction of a bulk operation failed.
type BulkFailure struct {
	TransactionID string `json:"transactionID"`
	Reason        string `json:"reason"`
}

// BulkApproveResult distinguishes the transactions a bulk approval
// succeeded for from the ones it failed for. One bad ID never aborts the
// rest of the batch.
type BulkApproveResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}
