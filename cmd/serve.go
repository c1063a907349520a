package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"heater_sizing/internal/config"
	"heater_sizing/internal/handlers"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/report"
	"heater_sizing/internal/server"
	"heater_sizing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd(v *viper.Viper, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and live WebSocket form until SIGINT/SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v, flags)
		},
	}
	cmd.Flags().String("port", "", "HTTP port (overrides http.port)")
	_ = v.BindPFlag("http.port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(ctx context.Context, v *viper.Viper, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(v, flags)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.Errorw("catalog_load_failed", "err", err)
		return err
	}

	services := service.NewService(cat, report.Options{FontPath: cfg.Report.FontPath}, log)
	apiHandler := handlers.NewHandler(services, log, handlerOptions(cfg))

	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	})

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(cfg.HTTP.Addr(), apiHandler.InitRoutes()) }()
	log.Infow("server_started", "addr", cfg.HTTP.Addr(), "catalog_source", cfg.Catalog.Source)

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server_failed", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func handlerOptions(cfg config.Config) handlers.Options {
	return handlers.Options{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RPS,
		RateLimitBurst:   cfg.RateLimit.Burst,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		MaxMessageBytes:  cfg.WS.MaxMessageBytes,
	}
}
