package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/config"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/pregnancy"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/triage"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/platform/db"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/platform/httpjson"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pregcare",
		Short:        "Pregnancy tracking and symptom triage API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(gestationCmd())
	rootCmd.AddCommand(triageCmd())
	rootCmd.AddCommand(symptomsCmd())
	rootCmd.AddCommand(guideCmd())
	return rootCmd
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

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newComposer uses the compiled-in catalog, and the advice table from
// ADVICE_TABLE_PATH when set.
func newComposer(cfg *config.Config) (*triage.Composer, error) {
	if cfg.AdviceTablePath == "" {
		return triage.NewComposer(nil, nil), nil
	}
	table, err := triage.LoadAdviceTableFile(cfg.AdviceTablePath)
	if err != nil {
		return nil, err
	}
	return triage.NewComposer(nil, table), nil
}

// newService wires the pregnancy service. With a nil pool profiles are kept
// in memory.
func newService(cfg *config.Config, pool *pgxpool.Pool) (*pregnancy.Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	composer, err := newComposer(cfg)
	if err != nil {
		return nil, err
	}

	var (
		profiles pregnancy.ProfileRepository
		contacts pregnancy.ContactRepository
	)
	if pool != nil {
		profiles = pregnancy.NewProfileRepoPG(pool)
		contacts = pregnancy.NewContactRepoPG(pool)
	} else {
		profiles = pregnancy.NewProfileRepoMemory()
		contacts = pregnancy.NewContactRepoMemory()
	}
	return pregnancy.NewService(profiles, composer,
		pregnancy.WithLocation(loc),
		pregnancy.WithContactRepository(contacts),
	), nil
}

func newServer(cfg *config.Config, logger zerolog.Logger, svc *pregnancy.Service, pool *pgxpool.Pool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = httpjson.Serializer{}

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	apiV1.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	pregnancy.NewHandler(svc).RegisterRoutes(apiV1)
	return e
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	// Database
	ctx := context.Background()
	var pool *pgxpool.Pool
	if cfg.UsesDatabase() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBSchema, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Str("schema", cfg.DBSchema).Msg("connected to database")
	} else {
		logger.Warn().Msg("DATABASE_URL not set, profiles are kept in memory")
	}

	svc, err := newService(cfg, pool)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build service")
	}
	if cfg.AdviceTablePath != "" {
		logger.Info().Str("path", cfg.AdviceTablePath).Msg("loaded advice table")
	}

	e := newServer(cfg, logger, svc, pool)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
