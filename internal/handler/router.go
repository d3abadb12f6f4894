package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-system/internal/handler/api"
	"appointment-system/internal/handler/middleware"
	"appointment-system/internal/pkg/config"
)

const APIPrefix = "/api/v1"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, appointmentHandler *api.AppointmentHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, appointmentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	if cfg.Server.MetricsEnabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, appointmentHandler *api.AppointmentHandler) {
	engine.GET("/health", healthCheck)

	if cfg.Server.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group(APIPrefix)
	{
		appointments := v1.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
			{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: appointmentHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
