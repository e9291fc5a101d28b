package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/summit-health/backend/internal/apierror"
	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/service"
)

type ScoreHandler struct {
	analysisService service.AnalysisService
}

// NewScoreHandler creates a new vital score handler
func NewScoreHandler(analysisService service.AnalysisService) *ScoreHandler {
	return &ScoreHandler{analysisService: analysisService}
}

// GetScore handles GET /api/v1/scores/:date
func (h *ScoreHandler) GetScore(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	dateParam := c.Param("date")
	date, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(requestID, "date", dateParam))
		return
	}

	score, err := h.analysisService.GetScore(c.Request.Context(), date)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load score", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	if score == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Vital score", dateParam))
		return
	}

	c.JSON(http.StatusOK, score)
}

// GetScores handles GET /api/v1/scores?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ScoreHandler) GetScores(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	from, to, problem := parseRangeParams(c, requestID)
	if problem != nil {
		apierror.WriteProblem(c, problem)
		return
	}

	scores, err := h.analysisService.GetScores(c.Request.Context(), from, to)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load scores", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": scores, "count": len(scores)})
}

// RecomputeScore handles POST /api/v1/scores/:date/recompute
// Rederives the score from stored metrics; 404 when the date has no
// recorded measurements.
func (h *ScoreHandler) RecomputeScore(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	dateParam := c.Param("date")
	date, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(requestID, "date", dateParam))
		return
	}

	score, err := h.analysisService.RecomputeScore(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrNoMetrics) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Health metrics", dateParam))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to recompute score", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, score)
}
