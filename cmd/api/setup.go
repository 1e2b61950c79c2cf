package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/metrics"
	"github.com/protectedpay/protectedpay-api/internal/middleware"
	"github.com/protectedpay/protectedpay-api/internal/server"
)

// setup loads the config, configures logging and builds the application and
// its router. ctx bounds background work such as rate limiter cleanup.
func setup(ctx context.Context) (*config.Config, *app.App, *gin.Engine, error) {
	cfg, err := config.Load(os.Getenv(constants.EnvConfigDir))
	if err != nil {
		logger.InitLogger(constants.DevEnvironment)
		return nil, nil, nil, err
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == constants.ProdEnvironment,
		EnableColor: cfg.Stage != constants.ProdEnvironment,
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	application, err := app.New(ctx, cfg, m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(ctx, middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
	}

	router := server.NewRouter(buildHandlers(application), server.Options{
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Metrics:     m,
	})
	return cfg, application, router, nil
}

func buildHandlers(a *app.App) server.Handlers {
	var pinger handlers.Pinger
	if pool := a.Pool(); pool != nil {
		pinger = pool
	}

	h := server.Handlers{
		Health:        handlers.NewHealthHandler(a.Session, pinger),
		Transfers:     handlers.NewTransferHandler(a.Transfers),
		Profiles:      handlers.NewProfileHandler(a.Profiles),
		GroupPayments: handlers.NewGroupPaymentHandler(a.GroupPayments),
		SavingsPots:   handlers.NewSavingsPotHandler(a.SavingsPots),
		Wallet:        handlers.NewWalletHandler(a.Wallet),
	}
	if a.Activity != nil {
		h.Activity = handlers.NewActivityHandler(a.Activity)
	}
	return h
}
