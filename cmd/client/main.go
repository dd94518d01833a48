package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realtime-client/config"
	"realtime-client/internal/app"
	"realtime-client/internal/httpserver"
	"realtime-client/pkg/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the client
	client, err := app.New(ctx, logger, cfg, app.Options{})
	if err != nil {
		logger.Error(ctx, "Failed to initialize client: ", err)
		os.Exit(1)
	}
	if err := client.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start client: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Client started for %s", cfg.Page.URL)

	// Initialize control server
	var srv *httpserver.HTTPServer
	if cfg.Server.Enabled {
		srv, err = httpserver.New(logger, httpserver.Config{
			Addr:       fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Mode:       cfg.Server.Mode,
			PageOrigin: client.Origin(),
			Controller: client,
			Discord:    client.Discord(),
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize control server: ", err)
			os.Exit(1)
		}
		go func() {
			if err := srv.Start(); err != nil {
				logger.Error(context.Background(), "Control server stopped: ", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "Control server shutdown: ", err)
		}
	}
	if err := client.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Client shutdown: ", err)
	}
	logger.Info(shutdownCtx, "Cleanup completed")
}
