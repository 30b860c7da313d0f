package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/statement_review_app/internal/apperrors"
	portssvc "github.com/SscSPs/statement_review_app/internal/core/ports/services"
	"github.com/SscSPs/statement_review_app/internal/core/services"
	"github.com/SscSPs/statement_review_app/internal/dto"
	"github.com/SscSPs/statement_review_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// topCategoryCount bounds the ranked category view in analytics responses.
const topCategoryCount = 5

// analyticsHandler handles HTTP requests related to derived analytics.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("", h.getAnalytics)
		analytics.GET("/monthly/:year/:month", h.getMonthlySummary)
	}
}

// getAnalytics godoc
// @Summary Get transaction analytics
// @Description Recomputes totals plus category and status breakdowns over the current transaction state
// @Tags analytics
// @Produce json
// @Param statementID query string false "Scope the snapshot to one statement"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Router /analytics [get]
func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Query("statementID")

	snapshot, err := h.analyticsService.Snapshot(c.Request.Context(), statementID)
	if err != nil {
		logger.Error("Failed to compute analytics snapshot", slog.String("statement_id", statementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(snapshot, services.TopCategories(snapshot, topCategoryCount)))
}

// getMonthlySummary godoc
// @Summary Get a monthly transaction summary
// @Description Recomputes the per-day bucketed view of one calendar month
// @Tags analytics
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 500 {object} map[string]string "Failed to compute monthly summary"
// @Router /analytics/monthly/{year}/{month} [get]
func (h *analyticsHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	summary, err := h.analyticsService.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute monthly summary", slog.Int("year", year), slog.Int("month", month), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}
