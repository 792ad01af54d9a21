// Package server ties the application lifecycle together: startup,
// serving and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusreg/deptregistry/internal/bootstrap"
	"github.com/campusreg/deptregistry/internal/config"
)

// Server represents the running application.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
}

// NewServer loads configuration, connects the database and builds the
// dependency graph.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		cfg:    cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and blocks until an interrupt signal or a
// fatal server error.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.logger.Error().Err(err).Msg("HTTP server error")
		s.Shutdown()
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Forced shutdown")
		s.Shutdown()
		return err
	}

	s.Shutdown()
	s.logger.Info().Msg("Server stopped")
	return nil
}

// Shutdown releases resources held by the server.
func (s *Server) Shutdown() {
	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection pool closed")
	}
}
