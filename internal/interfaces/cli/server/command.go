// Package server implements the `fibernet server` command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	dashboardusecases "fibernet/internal/application/dashboard/usecases"
	"fibernet/internal/infrastructure/cache"
	"fibernet/internal/infrastructure/config"
	"fibernet/internal/infrastructure/database"
	"fibernet/internal/infrastructure/migration"
	httprouter "fibernet/internal/interfaces/http"
	"fibernet/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the fibernet HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		manager := migration.NewManager(cfg.Server.Mode, cfg.Database.Driver, log)
		if err := manager.Migrate(database.Get()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	// A nil cache interface disables dashboard caching. The typed
	// pointer from NewRedisCache must not be assigned directly or the
	// interface would be non-nil with a nil receiver behind it.
	var dashCache dashboardusecases.Cache
	redisCache, err := cache.NewRedisCache(&cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisCache != nil {
		dashCache = redisCache
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Errorw("failed to close redis client", "error", err)
			}
		}()
	}

	router := httprouter.NewRouter(cfg, database.Get(), dashCache, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return "release"
	case "test":
		return "test"
	default:
		return "debug"
	}
}
