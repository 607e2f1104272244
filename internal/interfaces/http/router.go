// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "guildesk/internal/application/auth/usecases"
	commentusecases "guildesk/internal/application/comment/usecases"
	ticketusecases "guildesk/internal/application/ticket/usecases"
	userusecases "guildesk/internal/application/user/usecases"
	"guildesk/internal/infrastructure/auth"
	"guildesk/internal/infrastructure/config"
	"guildesk/internal/infrastructure/feed"
	"guildesk/internal/infrastructure/repository"
	"guildesk/internal/infrastructure/services"
	"guildesk/internal/interfaces/http/handlers"
	commenthandlers "guildesk/internal/interfaces/http/handlers/comment"
	tickethandlers "guildesk/internal/interfaces/http/handlers/ticket"
	userhandlers "guildesk/internal/interfaces/http/handlers/user"
	"guildesk/internal/interfaces/http/middleware"
	"guildesk/internal/interfaces/http/routes"
	db "guildesk/internal/shared/db"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories and infrastructure services
	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)
	numberGen := services.NewTicketNumberGenerator(gormDB)
	commentFeed := feed.NewHub(log.Named("feed"))
	markdownSvc := markdown.NewMarkdownService()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	// Use cases
	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, numberGen, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(
		ticketRepo, commentRepo, txManager, cfg.Ticket.CascadeDeleteComments, log)

	addCommentUC := commentusecases.NewAddCommentUseCase(ticketRepo, commentRepo, commentFeed, log)
	listCommentsUC := commentusecases.NewListCommentsUseCase(commentRepo, userRepo, markdownSvc, log)
	subscribeCommentsUC := commentusecases.NewSubscribeCommentsUseCase(listCommentsUC, commentFeed, log)

	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	promoteReviewerUC := userusecases.NewPromoteReviewerUseCase(userRepo, log)

	// Handlers and middleware
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, jwtService)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, closeTicketUC, deleteTicketUC)
	commentHandler := commenthandlers.NewCommentHandler(addCommentUC, listCommentsUC, subscribeCommentsUC)
	userHandler := userhandlers.NewUserHandler(getProfileUC, listUsersUC, updateProfileUC, promoteReviewerUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimiter: rateLimiter,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		CommentHandler: commentHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
