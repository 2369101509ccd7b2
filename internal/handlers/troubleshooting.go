package handlers

import (
	"embed"
	"errors"
	"net/http"

	"pcst_ai/internal/models"
	"pcst_ai/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Response/status constants shared by all endpoints.
const (
	statusOK = "ok"

	errSearchRequired = "Equipment and problem description are required"
	errOccurredPrefix = "An error occurred: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// internalError reports err to the caller verbatim behind the standard prefix.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	h.logAndJSONError(c, http.StatusInternalServerError, errOccurredPrefix+err.Error(), logKey, err, kv...)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Equipment": h.services.Catalog.List(),
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List equipment types
// @Tags         troubleshooting
// @Produce      json
// @Success      200  {object}  map[string][]string  "equipment"
// @Router       /equipment [get]
func (h *Handler) listEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"equipment": h.services.Catalog.List()})
}

// @Summary      Troubleshoot equipment
// @Description  Sends the query to the text-completion service and returns the reply split into sections.
// @Tags         troubleshooting
// @Accept       json
// @Produce      json
// @Param        body  body      models.SearchRequest  true  "Troubleshooting query"
// @Success      200   {object}  models.SearchResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /search [post]
func (h *Handler) search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errSearchRequired})
		return
	}

	sections, err := h.services.Troubleshooting.Troubleshoot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errSearchRequired})
			return
		}
		h.internalError(c, "search_failed", err, "equipment", req.Equipment)
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Success:   true,
		Equipment: req.Equipment,
		Response:  sections,
	})
}
