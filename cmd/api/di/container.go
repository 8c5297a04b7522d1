package di

import (
	"fmt"
	"time"

	"forum-api/cmd/api/infrastructure"
	"forum-api/internal/adapter/cache"
	"forum-api/internal/adapter/db/postgres"
	ginhandler "forum-api/internal/adapter/gin/handler"
	ginmiddleware "forum-api/internal/adapter/gin/middleware"
	"forum-api/internal/adapter/repository/cached"
	"forum-api/internal/adapter/token"
	"forum-api/internal/config"
	"forum-api/internal/usecase/account"
	"forum-api/internal/usecase/question"
	redisclient "forum-api/pkg/redis"
	"forum-api/pkg/security"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	DB              *gorm.DB
	RedisClient     *redisclient.Client
	TokenIssuer     *token.JWTIssuer
	AccountUC       account.Usecase
	QuestionUC      question.Usecase
	AccountHandler  *ginhandler.AccountHandler
	QuestionHandler *ginhandler.QuestionHandler
	RateLimiterCfg  ginmiddleware.RateLimiterConfig
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize cache layer
	accountCache := cache.NewRedisAccountCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)

	// Initialize repositories; account reads behind token auth go through
	// the cache, credential lookups and writes do not
	accountDBRepo := postgres.NewAccountRepoPG(db, l)
	accountRepo := cached.NewCachedAccountRepository(accountDBRepo, accountCache, l)
	questionRepo := postgres.NewQuestionRepoPG(db, l)

	// Initialize security primitives
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokenIssuer := token.NewJWTIssuer(token.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    time.Duration(cfg.Auth.TokenTTLSeconds) * time.Second,
	})

	// Initialize use cases
	accountUC := account.New(accountRepo, hasher, tokenIssuer, l)
	questionUC := question.New(questionRepo, accountRepo, l)

	// Initialize Gin handlers
	accountHandler := ginhandler.NewAccountHandler(accountUC, l)
	questionHandler := ginhandler.NewQuestionHandler(questionUC, l)

	return &Container{
		Config:          cfg,
		Logger:          l,
		DB:              db,
		RedisClient:     rdb,
		TokenIssuer:     tokenIssuer,
		AccountUC:       accountUC,
		QuestionUC:      questionUC,
		AccountHandler:  accountHandler,
		QuestionHandler: questionHandler,
		RateLimiterCfg: ginmiddleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
