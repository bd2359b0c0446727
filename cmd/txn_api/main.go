package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SscSPs/transaction_insights_api/cmd/docs"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/core/services"
	"github.com/SscSPs/transaction_insights_api/internal/handlers"
	"github.com/SscSPs/transaction_insights_api/internal/middleware"
	"github.com/SscSPs/transaction_insights_api/internal/platform/config"
	"github.com/SscSPs/transaction_insights_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/transaction_insights_api/internal/utils"
	"github.com/SscSPs/transaction_insights_api/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title Transaction Insights API
// @version 1.0
// @description Categorised spending summaries and rankings over ingested customer transactions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// The load finishes before the listener opens, so queries never observe a partial load.
	if cfg.IngestOnStartup {
		ingestTransactions(ctx, logger, cfg, serviceContainer.Ingestion)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// ingestTransactions loads the configured CSV file. Failures are logged; the API
// still starts and serves whatever the store already holds.
func ingestTransactions(ctx context.Context, logger *slog.Logger, cfg *config.Config, ingestion portssvc.IngestionSvc) {
	ctx = middleware.WithLogger(ctx, logger.With(slog.String("component", "ingestion")))

	result, err := ingestion.LoadFile(ctx, cfg.TransactionsCSVPath, cfg.IngestSkipIfPopulated)
	if err != nil {
		logger.Error("Transaction ingestion failed", slog.String("path", cfg.TransactionsCSVPath), slog.String("error", err.Error()))
		return
	}
	if result == nil {
		return
	}
	logger.Info("Transaction ingestion finished",
		slog.Int("customers_created", result.CustomersCreated),
		slog.Int("transactions_created", result.TransactionsCreated),
		slog.Int("rows_skipped", result.RowsSkipped))
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSAllowedOrigins
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"X-Request-ID"}
	return c
}
