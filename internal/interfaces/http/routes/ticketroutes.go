package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "guildesk/internal/interfaces/http/handlers/comment"
	tickethandlers "guildesk/internal/interfaces/http/handlers/ticket"
	"guildesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	CommentHandler *commenthandlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/:id/comments/stream",
			config.CommentHandler.StreamComments)
		tickets.POST("/:id/comments",
			config.CommentHandler.AddComment)
		tickets.GET("/:id/comments",
			config.CommentHandler.ListComments)
		tickets.POST("/:id/close",
			middleware.RequireStaff(),
			config.TicketHandler.CloseTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			middleware.RequireStaff(),
			config.TicketHandler.DeleteTicket)
	}
}
