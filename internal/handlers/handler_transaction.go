package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
	"github.com/SscSPs/statement_review_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transaction review.
type transactionHandler struct {
	reviewService portssvc.ReviewSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(rs portssvc.ReviewSvcFacade) *transactionHandler {
	return &transactionHandler{
		reviewService: rs,
	}
}

// registerTransactionRoutes registers routes related to transaction review.
func registerTransactionRoutes(rg *gin.RouterGroup, reviewService portssvc.ReviewSvcFacade) {
	h := newTransactionHandler(reviewService)

	txns := rg.Group("/transactions")
	{
		txns.GET("/statement/:statementID", h.listByStatement)
		txns.GET("/:transactionID", h.getTransaction)
		txns.PATCH("/:transactionID", h.updateTransaction)
		txns.POST("/:transactionID/approve", h.approveTransaction)
		txns.POST("/:transactionID/reject", h.rejectTransaction)
		txns.POST("/bulk-approve", h.bulkApprove)
	}
}

// listByStatement godoc
// @Summary List a statement's transactions
// @Description Returns a statement's transactions as a filtered, deterministically sorted view
// @Tags transactions
// @Produce json
// @Param statementID path string true "Statement ID"
// @Param search query string false "Case-insensitive substring match on description"
// @Param category query string false "Category filter ('all' or empty for no filtering)"
// @Param status query string false "Status filter ('all' or empty for no filtering)"
// @Param sortBy query string false "Sort field: date or amount" default(date)
// @Param sortDir query string false "Sort direction: asc or desc" default(desc)
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid filter or sort parameter"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions/statement/{statementID} [get]
func (h *transactionHandler) listByStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Param("statementID")

	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for listByStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, sort, ok := query.ToFilterAndSort()
	if !ok {
		logger.Warn("Invalid sort parameters", slog.String("sortBy", query.SortBy), slog.String("sortDir", query.SortDir))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort parameters. sortBy must be date|amount and sortDir asc|desc"})
		return
	}

	txns, err := h.reviewService.ListByStatement(c.Request.Context(), statementID, filter, sort)
	if err != nil {
		logger.Error("Failed to list transactions for statement", slog.String("statement_id", statementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a single transaction by its ID
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.reviewService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Edit a transaction
// @Description Applies the supplied fields and marks the transaction edited; originally extracted values are preserved
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Conflicting concurrent update"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{transactionID} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.reviewService.Edit(c.Request.Context(), transactionID, req)
	if err != nil {
		h.writeReviewError(c, err, "Failed to update transaction", transactionID)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// approveTransaction godoc
// @Summary Approve a transaction
// @Description Marks a transaction approved; approving an already-approved transaction is a no-op success
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Conflicting concurrent update"
// @Failure 500 {object} map[string]string "Failed to approve transaction"
// @Router /transactions/{transactionID}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	txn, err := h.reviewService.Approve(c.Request.Context(), transactionID)
	if err != nil {
		h.writeReviewError(c, err, "Failed to approve transaction", transactionID)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// rejectTransaction godoc
// @Summary Reject a transaction
// @Description Marks a transaction rejected
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Conflicting concurrent update"
// @Failure 500 {object} map[string]string "Failed to reject transaction"
// @Router /transactions/{transactionID}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	txn, err := h.reviewService.Reject(c.Request.Context(), transactionID)
	if err != nil {
		h.writeReviewError(c, err, "Failed to reject transaction", transactionID)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// bulkApprove godoc
// @Summary Approve multiple transactions
// @Description Approves each named transaction independently and reports per-ID success/failure; one bad ID never blocks the rest
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.BulkApproveRequest true "Transaction IDs to approve"
// @Success 200 {object} dto.BulkApproveResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to process bulk approval"
// @Router /transactions/bulk-approve [post]
func (h *transactionHandler) bulkApprove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkApprove", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.reviewService.BulkApprove(c.Request.Context(), req.TransactionIDs)
	if err != nil {
		logger.Error("Failed to process bulk approval", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process bulk approval"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBulkApproveResponse(result))
}

func (h *transactionHandler) writeReviewError(c *gin.Context, err error, msg string, transactionID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on review operation", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Concurrent update conflict", slog.String("transaction_id", transactionID))
		c.JSON(http.StatusConflict, gin.H{"error": "Transaction was modified concurrently, retry the operation"})
	default:
		logger.Error(msg, slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
