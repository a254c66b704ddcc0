package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tubenotes/tubenotes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *TranscriptHandler
	templateHandler   *TemplateHandler
	historyHandler    *HistoryHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, transcriptHandler *TranscriptHandler, templateHandler *TemplateHandler, historyHandler *HistoryHandler) *Router {
	return &Router{
		cfg:               cfg,
		transcriptHandler: transcriptHandler,
		templateHandler:   templateHandler,
		historyHandler:    historyHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	api.GET("/templates", rt.templateHandler.List)
	api.GET("/transcript/:videoId", rt.transcriptHandler.Fetch)
	api.POST("/process-transcript", rt.transcriptHandler.Process)
	api.POST("/suggest-templates", rt.transcriptHandler.Suggest)

	rt.setupHistoryRoutes(api)
}

// setupHistoryRoutes configures transcript history routes
func (rt *Router) setupHistoryRoutes(g *echo.Group) {
	historyGroup := g.Group("/history")

	historyGroup.POST("", rt.historyHandler.Save)
	historyGroup.GET("", rt.historyHandler.List)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
