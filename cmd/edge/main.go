package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/r8r-one/platform/internal/config"
	"github.com/r8r-one/platform/internal/edge"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	router := edge.NewRouter(
		config.PlatformDomain(),
		config.APIHost(),
		config.SiteOrigin(),
		config.APIOrigin(),
		logger,
	)

	addr := config.EdgeAddr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("edge router starting",
			zap.String("addr", addr),
			zap.String("platform_domain", config.PlatformDomain()),
			zap.String("site_origin", config.SiteOrigin()),
			zap.String("api_origin", config.APIOrigin()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("edge router failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down edge router")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("edge router forced to shutdown", zap.Error(err))
	}

	logger.Info("edge router stopped")
}
