package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/services"
	grpctransport "github.com/light-bringer/catalog-service/internal/transport/grpc"
)

const healthInterval = 15 * time.Second

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	if err := run(); err != nil {
		log.WithError(err).Fatal("Failed to run server")
	}
}

func run() error {
	// 1. Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())
	logger := log.StandardLogger()

	log.WithFields(log.Fields{
		"spannerDatabase": cfg.SpannerDatabase,
		"httpPort":        cfg.HTTPPort,
		"grpcPort":        cfg.GRPCPort,
	}).Info("Starting Product Catalog Service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. gRPC admin server: health + reflection
	grpcServer, healthServer := grpctransport.NewServer(logger)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	go grpctransport.WatchHealth(ctx, healthServer, serviceOpts.Ping, healthInterval, logger)

	errCh := make(chan error, 2)
	go func() {
		log.WithField("addr", lis.Addr().String()).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 4. HTTP API
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           serviceOpts.HTTPHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", httpServer.Addr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// 5. Graceful shutdown handling
	serveErr := waitForShutdown(ctx, errCh, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP server shutdown error")
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	return serveErr
}

// waitForShutdown blocks until ctx is cancelled or a server fails, and returns
// the server error, if any.
func waitForShutdown(ctx context.Context, errCh <-chan error, logger log.FieldLogger) error {
	select {
	case <-ctx.Done():
		logger.Info("Shutting down gracefully...")
		return nil
	case err := <-errCh:
		logger.WithError(err).Error("Server failed, shutting down")
		return err
	}
}
