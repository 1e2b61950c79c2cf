package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/metrics"
	"github.com/protectedpay/protectedpay-api/internal/middleware"
)

// Handlers groups the HTTP handlers the router mounts. Activity is nil when
// the activity store is disabled.
type Handlers struct {
	Health        *handlers.HealthHandler
	Transfers     *handlers.TransferHandler
	Profiles      *handlers.ProfileHandler
	GroupPayments *handlers.GroupPaymentHandler
	SavingsPots   *handlers.SavingsPotHandler
	Wallet        *handlers.WalletHandler
	Activity      *handlers.ActivityHandler
}

// Options configures the middleware stack
type Options struct {
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(configureCORS(opts.CORS))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)

	v1 := router.Group("/api/v1")
	{
		transfers := v1.Group("/transfers")
		{
			transfers.POST("", h.Transfers.Send)
			transfers.GET("", h.Transfers.ListTransfers)
			transfers.POST("/claim", h.Transfers.Claim)
			transfers.GET("/:transfer_id", h.Transfers.GetTransfer)
			transfers.POST("/:transfer_id/refund", h.Transfers.Refund)
		}

		profile := v1.Group("/profile")
		{
			profile.GET("", h.Profiles.GetProfile)
			profile.POST("/username", h.Profiles.RegisterUsername)
			profile.GET("/qr", h.Profiles.PaymentQR)
		}
		v1.GET("/users/:identifier", h.Profiles.LookupUser)
		v1.POST("/qr/parse", h.Profiles.ParsePaymentQR)

		groupPayments := v1.Group("/group-payments")
		{
			groupPayments.POST("", h.GroupPayments.Create)
			groupPayments.GET("", h.GroupPayments.ListForUser)
			groupPayments.GET("/:payment_id", h.GroupPayments.Get)
			groupPayments.POST("/:payment_id/contribute", h.GroupPayments.Contribute)
		}

		pots := v1.Group("/savings-pots")
		{
			pots.POST("", h.SavingsPots.Create)
			pots.GET("", h.SavingsPots.ListForUser)
			pots.GET("/:pot_id", h.SavingsPots.Get)
			pots.POST("/:pot_id/contribute", h.SavingsPots.Contribute)
			pots.POST("/:pot_id/break", h.SavingsPots.Break)
		}

		wallet := v1.Group("/wallet")
		{
			wallet.GET("", h.Wallet.Status)
			wallet.POST("/connect", h.Wallet.Connect)
			wallet.POST("/disconnect", h.Wallet.Disconnect)
			wallet.POST("/chain", h.Wallet.SwitchChain)
		}
		v1.GET("/chains", h.Wallet.ListChains)

		if h.Activity != nil {
			v1.GET("/activity", h.Activity.ListActivity)
			v1.GET("/activity/:entity_id", h.Activity.ListEntityHistory)
		}
	}

	return router
}

// NewHTTPServer wraps router in an http.Server listening on the configured port
func NewHTTPServer(cfg config.APIConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = cfg.AllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	if len(cfg.AllowedMethods) > 0 {
		corsConfig.AllowMethods = cfg.AllowedMethods
	}
	if len(cfg.AllowedHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.AllowedHeaders
	}
	corsConfig.ExposeHeaders = cfg.ExposedHeaders
	corsConfig.AllowCredentials = cfg.AllowCredentials

	return cors.New(corsConfig)
}
