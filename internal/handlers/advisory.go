package handlers

import (
	"errors"
	"net/http"

	"pcst_ai/internal/models"
	"pcst_ai/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLogsRequired   = "Control room logs are required"
	errTaskRequired   = "Task description is required"
	errParamsRequired = "All process parameters are required"
)

// advisoryError maps missing-input errors to 400 and everything else to 500.
func (h *Handler) advisoryError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrMissingLogs) || errors.Is(err, service.ErrMissingTask) || errors.Is(err, service.ErrMissingConditions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": userMsg})
		return
	}
	h.internalError(c, logKey, err, kv...)
}

// @Summary      Analyze control room incident
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      models.IncidentRequest  true  "Control room logs"
// @Success      200   {object}  models.IncidentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/vcra/analyze [post]
func (h *Handler) analyzeIncident(c *gin.Context) {
	var req models.IncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errLogsRequired})
		return
	}
	details, err := h.services.Advisory.AnalyzeIncident(c.Request.Context(), req.Logs)
	if err != nil {
		h.advisoryError(c, errLogsRequired, "incident_analysis_failed", err)
		return
	}
	c.JSON(http.StatusOK, models.IncidentResponse{Success: true, Response: details})
}

// @Summary      Assess job task safety
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      models.SafetyRequest  true  "Job task"
// @Success      200   {object}  models.SafetyResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/safety/analyze [post]
func (h *Handler) assessSafety(c *gin.Context) {
	var req models.SafetyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTaskRequired})
		return
	}
	details, err := h.services.Advisory.AssessSafety(c.Request.Context(), req.Task)
	if err != nil {
		h.advisoryError(c, errTaskRequired, "safety_assessment_failed", err)
		return
	}
	c.JSON(http.StatusOK, models.SafetyResponse{Success: true, Response: details})
}

// @Summary      Assess corrosion risk
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      models.CorrosionRequest  true  "Process conditions"
// @Success      200   {object}  models.CorrosionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/corrosion/analyze [post]
func (h *Handler) assessCorrosion(c *gin.Context) {
	var req models.CorrosionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errParamsRequired})
		return
	}
	details, err := h.services.Advisory.AssessCorrosion(c.Request.Context(), req)
	if err != nil {
		h.advisoryError(c, errParamsRequired, "corrosion_assessment_failed", err, "material", req.Material)
		return
	}
	c.JSON(http.StatusOK, models.CorrosionResponse{Success: true, Response: details})
}
