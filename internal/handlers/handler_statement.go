package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
	"github.com/SscSPs/statement_review_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests related to statements.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// registerStatementRoutes registers routes related to statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("", h.ingestStatement)
		statements.GET("", h.listStatements)
		statements.GET("/:statementID", h.getStatement)
		statements.DELETE("/:statementID", h.deleteStatement)
	}
}

// ingestStatement godoc
// @Summary Ingest an extracted statement
// @Description Persists a statement and its extracted transactions atomically; every transaction enters review as pending
// @Tags statements
// @Accept json
// @Produce json
// @Param statement body dto.IngestStatementRequest true "Statement metadata and extracted transactions"
// @Success 201 {object} dto.IngestStatementResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Statement already exists"
// @Failure 500 {object} map[string]string "Failed to ingest statement"
// @Router /statements [post]
func (h *statementHandler) ingestStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IngestStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ingestStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	statement, txns, err := h.statementService.IngestStatement(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error ingesting statement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to ingest statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest statement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.IngestStatementResponse{
		Success:          true,
		Message:          "Statement processed successfully",
		StatementID:      statement.StatementID,
		BankName:         statement.BankName,
		TransactionCount: len(txns),
	})
}

// listStatements godoc
// @Summary List statements
// @Description Retrieves a paginated list of statements, newest upload first
// @Tags statements
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.StatementResponse
// @Failure 500 {object} map[string]string "Failed to list statements"
// @Router /statements [get]
func (h *statementHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	statements, err := h.statementService.ListStatements(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list statements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponses(statements))
}

// getStatement godoc
// @Summary Get a statement by ID
// @Description Retrieves details for a specific statement by its ID
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} map[string]string "Statement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve statement"
// @Router /statements/{statementID} [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Param("statementID")

	statement, err := h.statementService.GetStatement(c.Request.Context(), statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Statement not found"})
		} else {
			logger.Error("Failed to get statement", slog.String("statement_id", statementID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// deleteStatement godoc
// @Summary Delete a statement
// @Description Deletes a statement and all its transactions
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Statement not found"
// @Failure 500 {object} map[string]string "Failed to delete statement"
// @Router /statements/{statementID} [delete]
func (h *statementHandler) deleteStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Param("statementID")

	if err := h.statementService.DeleteStatement(c.Request.Context(), statementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Statement not found"})
		} else {
			logger.Error("Failed to delete statement", slog.String("statement_id", statementID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete statement"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statement deleted successfully"})
}
