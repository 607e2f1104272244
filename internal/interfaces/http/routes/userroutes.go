package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "guildesk/internal/interfaces/http/handlers/user"
	"guildesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			config.UserHandler.ListUsers)
		users.GET("/me",
			config.UserHandler.GetMe)

		users.POST("/:id/promote",
			middleware.RequireAdmin(),
			config.UserHandler.PromoteReviewer)

		users.GET("/:id",
			config.UserHandler.GetProfile)
		users.PATCH("/:id",
			config.UserHandler.UpdateProfile)
	}
}
