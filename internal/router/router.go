package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sociable/social-api/internal/api"
	"github.com/sociable/social-api/internal/middleware"
	"github.com/sociable/social-api/internal/service"
)

// Setup configures the application routes.
func Setup(
	log *zap.Logger,
	authService service.IAuthService,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	searchHandler *api.SearchHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID(""))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.Default())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")

	// Unauthenticated: registration and token issuance.
	authHandler.RegisterRoutes(v1)

	// Everything else requires a valid access token.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profileHandler.RegisterRoutes(protected)
		searchHandler.RegisterRoutes(protected)
	}

	return router
}
