package router

import (
	"net/http"

	"forum-api/internal/adapter/gin/handler"
	"forum-api/internal/adapter/gin/middleware"
	redisclient "forum-api/pkg/redis"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	accountHandler *handler.AccountHandler,
	questionHandler *handler.QuestionHandler,
	tokenVerifier middleware.TokenVerifier,
	rateLimiterCfg middleware.RateLimiterConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	if redisClient != nil {
		router.Use(middleware.RateLimiter(rateLimiterCfg, redisClient.Client, log))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "forum-api",
		})
	})

	// Account registration and session issuance
	router.POST("/accounts", accountHandler.Register)
	router.POST("/sessions", accountHandler.Authenticate)

	// Question routes; creation requires a valid session token
	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", middleware.Auth(tokenVerifier, log), questionHandler.CreateQuestion)
	}

	// Serve the swagger JSON file and UI. The JSON lives outside /swagger
	// because gin does not allow a static route under a catch-all.
	router.StaticFile("/api/forum.swagger.json", "./api/swagger/forum.swagger.json")
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/api/forum.swagger.json"),
	)))

	return router
}
