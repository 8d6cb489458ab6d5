package httpserver

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/config"
	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// Server exposes a small admin API next to the bot: health checks and a
// read-only view over users' subscriptions, behind JWT auth.
type Server struct {
	cfg    config.Config
	echo   *echo.Echo
	addr   string
	closed bool
	subs   ports.SubscriptionStore
	log    *zap.Logger
}

func NewServer(cfg config.Config, subs ports.SubscriptionStore, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(cfg.JWTSecret),
		Skipper: func(c echo.Context) bool {
			// Allow health and auth endpoints without JWT
			path := c.Path()
			if path == "/health" || path == "/auth/login" {
				return true
			}
			return false
		},
		ContextKey:  "user",
		TokenLookup: "header:Authorization:Bearer ",
	}))

	s := &Server{
		cfg:  cfg,
		echo: e,
		addr: fmt.Sprintf(":%s", cfg.AdminPort),
		subs: subs,
		log:  log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", HealthHandler)
	s.echo.POST("/auth/login", LoginHandler(s.cfg))
	s.echo.GET("/users/:userId/subscriptions", ListSubscriptionsHandler(s.subs))
}

func (s *Server) Start() error {
	s.log.Info("admin API listening", zap.String("addr", s.addr))
	return s.echo.Start(s.addr)
}

func (s *Server) Stop(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.echo.Shutdown(ctx)
}
