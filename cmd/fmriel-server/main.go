package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/juliangorge/fmriel-api/internal/config"
	"github.com/juliangorge/fmriel-api/internal/domain/deathreport"
	"github.com/juliangorge/fmriel-api/internal/domain/pharmacy"
	"github.com/juliangorge/fmriel-api/internal/domain/pharmacyschedule"
	"github.com/juliangorge/fmriel-api/internal/domain/post"
	"github.com/juliangorge/fmriel-api/internal/domain/postsection"
	"github.com/juliangorge/fmriel-api/internal/domain/raincity"
	"github.com/juliangorge/fmriel-api/internal/platform/middleware"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fmriel-server",
		Short: "FM Riel API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Data store client
	base, err := store.New(store.Config{
		URL:     cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
		Timeout: time.Duration(cfg.StoreTimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create store client")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))

	// Per-request store client bound to the caller's bearer token
	e.Use(store.Middleware(base))

	// API group
	api := e.Group("/api")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Response cache for unauthenticated reads
	cacheCtx, cancelCache := context.WithCancel(context.Background())
	defer cancelCache()
	cacheStore := middleware.NewInMemoryCacheStore()
	cacheStore.StartCleanup(cacheCtx, 10*time.Minute)
	api.Use(middleware.ResponseCache(cacheStore, time.Duration(cfg.CacheTTLSeconds)*time.Second))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Resource contexts
	post.NewHandler(post.NewService(post.NewRepository(base))).RegisterRoutes(api)
	postsection.NewHandler(postsection.NewService(postsection.NewRepository(base))).RegisterRoutes(api)
	pharmacy.NewHandler(pharmacy.NewService(pharmacy.NewRepository(base))).RegisterRoutes(api)
	pharmacyschedule.NewHandler(pharmacyschedule.NewService(pharmacyschedule.NewRepository(base))).RegisterRoutes(api)
	deathreport.NewHandler(deathreport.NewService(deathreport.NewRepository(base))).RegisterRoutes(api)
	raincity.NewHandler(raincity.NewService(raincity.NewRepository(base))).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
