package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pto_ledger_service/cmd/docs"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// gin's binding engine validates request DTOs; it needs the decimal type func too
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	r.GET("/health", healthCheck(services.Health))

	setupAPIV1Routes(r, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerLedgerRoutes(v1, services.Ledger)
	registerEmployeeRoutes(v1, services.Ledger)
	registerTriggerRoutes(v1, services.Poller)
	registerWorkflowRoutes(v1, services.Approval, services.Notification)
}

// healthCheck godoc
// @Summary Show the status of the server
// @Description Pings the record store
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} map[string]string "Record store unreachable"
// @Router /health [get]
func healthCheck(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := health.Check(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Record store unreachable"})
			return
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
