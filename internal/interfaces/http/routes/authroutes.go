package routes

import (
	"github.com/gin-gonic/gin"

	"guildesk/internal/interfaces/http/handlers"
	"guildesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	limit := func() gin.HandlerFunc {
		if cfg.RateLimiter != nil {
			return cfg.RateLimiter.Limit()
		}
		return func(c *gin.Context) { c.Next() }
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/register", limit(), cfg.AuthHandler.Register)
		auth.POST("/login", limit(), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
	}
}
