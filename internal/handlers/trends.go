package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/summit-health/backend/internal/apierror"
	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/models"
	"github.com/summit-health/backend/internal/service"
)

type TrendHandler struct {
	analysisService service.AnalysisService
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(analysisService service.AnalysisService) *TrendHandler {
	return &TrendHandler{analysisService: analysisService}
}

// RefreshTrends handles POST /api/v1/trends/refresh
// Recomputes every metric/timeframe combination from stored history and
// returns the trends that had enough data.
func (h *TrendHandler) RefreshTrends(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	trends, err := h.analysisService.RefreshTrends(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("trend refresh failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends, "count": len(trends)})
}

// GetTrends handles GET /api/v1/trends?timeframe=30d
// Without a timeframe filter all stored trends are returned.
func (h *TrendHandler) GetTrends(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	tf := models.Timeframe(c.Query("timeframe"))
	trends, err := h.analysisService.GetTrends(c.Request.Context(), tf)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeframe) {
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
				err.Error(), "Unsupported timeframe"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to load trends", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends, "count": len(trends)})
}

// GetSignificantShifts handles GET /api/v1/insights/shifts
// Returns narrative insights for declining trends that moved more than
// the significance threshold, strongest shift first.
func (h *TrendHandler) GetSignificantShifts(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	shifts, err := h.analysisService.GetSignificantShifts(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build insights", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts, "count": len(shifts)})
}
