//go:build !lambda

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/server"
	"go.uber.org/zap"
)

// @title           ProtectedPay API
// @version         1.0
// @description     HTTP API over the ProtectedPay escrow-transfer contract
// @BasePath        /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, application, router, err := setup(ctx)
	if err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	defer application.Close()

	application.StartIndexer(ctx)

	srv := server.NewHTTPServer(cfg.API, router)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("stage", cfg.Stage),
			zap.String("contract", cfg.ContractAddress().Hex()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
