package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/metrics"
	"github.com/protectedpay/protectedpay-api/internal/middleware"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/server"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

type testServices struct {
	transfers *mocks.MockTransferService
	wallet    *mocks.MockWalletService
	activity  *mocks.MockActivityService
}

func newTestRouter(t *testing.T, withActivity bool, opts server.Options) (*gin.Engine, testServices) {
	ctrl := gomock.NewController(t)
	svc := testServices{
		transfers: mocks.NewMockTransferService(ctrl),
		wallet:    mocks.NewMockWalletService(ctrl),
		activity:  mocks.NewMockActivityService(ctrl),
	}

	h := server.Handlers{
		Health:        handlers.NewHealthHandler(nil, nil),
		Transfers:     handlers.NewTransferHandler(svc.transfers),
		Profiles:      handlers.NewProfileHandler(mocks.NewMockProfileService(ctrl)),
		GroupPayments: handlers.NewGroupPaymentHandler(mocks.NewMockGroupPaymentService(ctrl)),
		SavingsPots:   handlers.NewSavingsPotHandler(mocks.NewMockSavingsPotService(ctrl)),
		Wallet:        handlers.NewWalletHandler(svc.wallet),
	}
	if withActivity {
		h.Activity = handlers.NewActivityHandler(svc.activity)
	}
	return server.NewRouter(h, opts), svc
}

func TestNewRouter_Routes(t *testing.T) {
	router, svc := newTestRouter(t, false, server.Options{})
	svc.wallet.EXPECT().ListChains().Return([]business.Chain{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chains", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/activity?address=0x1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "activity routes need the activity store")
}

func TestNewRouter_ActivityRoutes(t *testing.T) {
	router, svc := newTestRouter(t, true, server.Options{})
	svc.activity.EXPECT().ListEntityHistory(gomock.Any(), "0xabc").Return(nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/activity/0xabc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	router, _ := newTestRouter(t, false, server.Options{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://app.protectedpay.example"},
			AllowedMethods: []string{"GET", "POST"},
			ExposedHeaders: []string{middleware.CorrelationIDHeader},
		},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transfers", nil)
	req.Header.Set("Origin", "https://app.protectedpay.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.protectedpay.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/transfers", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewRouter_MetricsAndRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router, svc := newTestRouter(t, false, server.Options{
		Metrics:     metrics.New(),
		RateLimiter: middleware.NewRateLimiter(ctx, middleware.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}),
	})
	svc.wallet.EXPECT().ListChains().Return(nil)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/chains", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/chains", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	scrape := httptest.NewRecorder()
	router.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), "protectedpay_api_requests_total")
}
