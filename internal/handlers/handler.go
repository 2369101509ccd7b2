package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"pcst_ai/internal/logger"
	"pcst_ai/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pcst_ai/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	corsOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies. An empty
// corsOrigins list disables the CORS middleware.
func NewHandler(services *service.Service, log *logger.Logger, corsOrigins []string) *Handler {
	return &Handler{services: services, log: log, corsOrigins: corsOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(requestID, h.accessLog, gin.CustomRecovery(h.recoverJSON))
	if len(h.corsOrigins) > 0 {
		router.Use(newCORS(h.corsOrigins))
	}
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.index)
	router.GET("/health", h.health)
	h.registerTroubleshootingRoutes(router)

	// Same operations under /api for the single-page frontend, plus advisors.
	api := router.Group("/api")
	{
		h.registerTroubleshootingRoutes(api)
		h.registerAdvisoryRoutes(api)
	}

	return router
}

func (h *Handler) registerTroubleshootingRoutes(r gin.IRoutes) {
	r.GET("/equipment", h.listEquipment)
	r.POST("/search", h.search)
}

func (h *Handler) registerAdvisoryRoutes(api *gin.RouterGroup) {
	api.POST("/vcra/analyze", h.analyzeIncident)
	api.POST("/safety/analyze", h.assessSafety)
	api.POST("/corrosion/analyze", h.assessCorrosion)
}

// recoverJSON turns a panic in any handler into the standard 500 body.
func (h *Handler) recoverJSON(c *gin.Context, recovered any) {
	err := fmt.Errorf("%v", recovered)
	h.logAndJSONError(c, http.StatusInternalServerError, errOccurredPrefix+err.Error(), "handler_panic", err)
	c.Abort()
}
