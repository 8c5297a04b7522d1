package server

import (
	"fmt"
	"net/http"

	"forum-api/cmd/api/di"
	"forum-api/internal/config"

	"go.uber.org/zap"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance wired from the container
func New(cfg *config.Config, l *zap.Logger, c *di.Container) (*Server, error) {
	httpServer, err := SetupGinServer(
		c.AccountHandler,
		c.QuestionHandler,
		c.TokenIssuer,
		c.RateLimiterCfg,
		c.RedisClient,
		":"+cfg.App.HTTPPort,
		l,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up HTTP server: %w", err)
	}

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   httpServer,
	}, nil
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}
