package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav244872/jobboard/api"
	"github.com/pranav244872/jobboard/config"
	db "github.com/pranav244872/jobboard/db/sqlc"
	"github.com/pranav244872/jobboard/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, configPath(cmd))
		},
	}
}

// serve runs the API until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, path string) error {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Step 2: Build the logger
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer log.Sync()

	log.Info("configuration loaded", zap.String("version", version), zap.String("address", cfg.ServerAddress))

	// Step 3: Establish database connection pool
	connPool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("could not connect to the database: %w", err)
	}
	defer connPool.Close()

	if err := connPool.Ping(ctx); err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}
	log.Info("database connection pool established")

	// Step 4: Create the API server
	gin.SetMode(cfg.GinMode)
	server, err := api.NewServer(cfg, db.NewStore(connPool), log)
	if err != nil {
		return fmt.Errorf("could not create the server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Step 5: Serve until a signal arrives, then shut down gracefully
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting server", zap.String("address", cfg.ServerAddress))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}

	log.Info("server stopped")
	return nil
}
