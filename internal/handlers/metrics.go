package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/summit-health/backend/internal/apierror"
	"github.com/summit-health/backend/internal/logger"
	"github.com/summit-health/backend/internal/models"
	"github.com/summit-health/backend/internal/service"
)

// dateLayout is the wire format for calendar dates in paths and queries.
const dateLayout = "2006-01-02"

type MetricsHandler struct {
	metricsService  service.MetricsService
	analysisService service.AnalysisService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metricsService service.MetricsService, analysisService service.AnalysisService) *MetricsHandler {
	return &MetricsHandler{
		metricsService:  metricsService,
		analysisService: analysisService,
	}
}

// UpsertMetrics handles PUT /api/v1/metrics/:date
// Stores the day's measurements and recomputes the vital score for that
// date in the same request, so the stored score never lags the data.
func (h *MetricsHandler) UpsertMetrics(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	dateParam := c.Param("date")
	date, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(requestID, "date", dateParam))
		return
	}

	var req models.UpsertMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors(verrs)))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	metrics, err := h.metricsService.UpsertDailyMetrics(c.Request.Context(), date, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to store metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	score, err := h.analysisService.RecomputeScore(c.Request.Context(), date)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to recompute score", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, models.UpsertMetricsResponse{
		Metrics: metrics,
		Score:   score,
	})
}

// GetMetrics handles GET /api/v1/metrics?from=YYYY-MM-DD&to=YYYY-MM-DD
// Omitted bounds default to the last 30 days ending today.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	from, to, problem := parseRangeParams(c, requestID)
	if problem != nil {
		apierror.WriteProblem(c, problem)
		return
	}

	metrics, err := h.metricsService.GetMetrics(c.Request.Context(), from, to)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics, "count": len(metrics)})
}

// parseRangeParams reads the from/to query parameters shared by the
// range endpoints.
func parseRangeParams(c *gin.Context, requestID string) (time.Time, time.Time, *apierror.ProblemDetails) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, apierror.NewInvalidDateError(requestID, "from", raw)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, apierror.NewInvalidDateError(requestID, "to", raw)
		}
		to = parsed
	}
	if to.Before(from) {
		return from, to, apierror.NewBadRequestError(requestID,
			"'to' date is before 'from' date",
			"The end of the range must not precede its start")
	}
	return from, to, nil
}

// fieldErrors maps validator failures to the response error list.
// Field names come from the json struct tags, registered at startup.
func fieldErrors(verrs validator.ValidationErrors) []apierror.FieldError {
	out := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apierror.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed validation rule " + fe.Tag()
	}
}
