package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/vinque/vinque_backend/cmd/docs"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/middleware"
	"github.com/vinque/vinque_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// authLimiter throttles the credential endpoints per client IP; nil disables it.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerUploadRoutes(r, cfg, services.Files)

	api := r.Group("/api", middleware.OptionalAuth(services.Token))
	api.GET("/test", getTest)

	credentials := []gin.HandlerFunc{}
	if authLimiter != nil {
		credentials = append(credentials, middleware.RateLimit(authLimiter))
	}
	registerAuthRoutes(api, services, credentials...)

	registerProductRoutes(api, services.Product)
	registerOrderRoutes(api, services.Order)
	registerProfileRoutes(api, services.Profile)
	registerAnalyticsRoutes(api, services.Analytics)

	admin := api.Group("", middleware.RequireRole(domain.RoleAdmin))
	registerAdminRoutes(admin, services.Admin)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
