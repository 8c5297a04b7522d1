package server

import (
	"net/http"
	"time"

	ginhandler "forum-api/internal/adapter/gin/handler"
	ginmiddleware "forum-api/internal/adapter/gin/middleware"
	ginrouter "forum-api/internal/adapter/gin/router"
	redisclient "forum-api/pkg/redis"

	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	accountHandler *ginhandler.AccountHandler,
	questionHandler *ginhandler.QuestionHandler,
	tokenVerifier ginmiddleware.TokenVerifier,
	rateLimiterCfg ginmiddleware.RateLimiterConfig,
	redisClient *redisclient.Client,
	addr string,
	l *zap.Logger,
) (*http.Server, error) {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(accountHandler, questionHandler, tokenVerifier, rateLimiterCfg, redisClient, l)

	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, nil
}
