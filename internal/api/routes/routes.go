package routes

import (
	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	_ "portfolio-backend/docs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const maxBodyBytes = 1 << 20 // 1 MiB, matches the frontend's payload ceiling

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Compression())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.BodySizeLimit(maxBodyBytes))

	validate := validator.New()

	cacheService := cache.NewInMemoryCache(cache.DefaultCacheConfig())
	ttlConfig := cache.DefaultTTLConfig()
	cacheWrapper := cache.NewCacheWrapper(cacheService, ttlConfig.Default)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	blogPostRepo := repository.NewBlogPostRepository(db)

	// Services
	contactService := service.NewContactService(messageRepo, validate)
	projectService := service.NewProjectService(projectRepo, validate)
	blogPostService := service.NewBlogPostService(blogPostRepo, validate)

	// Auth is optional: without provider credentials the public CRUD
	// surface still works, only the /auth routes are absent.
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		logger.New().Warnf("Failed to load auth config, auth routes disabled: %v", err)
	} else {
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			logger.New().Warnf("Failed to initialize auth service, auth routes disabled: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService, userRepo)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	contactHandler := handlers.NewContactHandler(contactService, cacheWrapper, ttlConfig.MessageList)
	projectHandler := handlers.NewProjectHandler(projectService, cacheWrapper, ttlConfig.ProjectList)
	blogPostHandler := handlers.NewBlogPostHandler(blogPostService, cacheWrapper, ttlConfig.BlogPostList)

	// Health and liveness routes
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public API routes
	api := router.Group("/api")
	{
		api.POST("/contact", contactHandler.CreateMessage)
		api.GET("/messages", contactHandler.ListMessages)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects", projectHandler.ListProjects)
		api.POST("/blog-posts", blogPostHandler.CreateBlogPost)
		api.GET("/blog-posts", blogPostHandler.ListBlogPosts)
	}

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/auth")
		{
			authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
			authGroup.GET("/:provider", authHandler.Start)
			authGroup.GET("/:provider/callback", authHandler.Callback)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
