package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	router := newRouter()
	router.GET("/health", handlers.NewHealthHandler(nil, nil).Health)

	w := perform(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		connected  bool
		pingErr    error
		wantStatus int
		wantChecks map[string]interface{}
	}{
		{
			name:       "ready",
			connected:  true,
			wantStatus: http.StatusOK,
			wantChecks: map[string]interface{}{"wallet": "connected", "database": "ok"},
		},
		{
			name:       "wallet disconnected",
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]interface{}{"wallet": "disconnected", "database": "ok"},
		},
		{
			name:       "database down",
			connected:  true,
			pingErr:    errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]interface{}{"wallet": "connected", "database": "unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := mocks.NewMockWalletSessionForTest(t)
			wallet.EXPECT().Status().Return(business.WalletStatus{IsConnected: tt.connected})

			router := newRouter()
			router.GET("/health/ready", handlers.NewHealthHandler(wallet, pingFunc(func(context.Context) error { return tt.pingErr })).Ready)

			w := perform(router, http.MethodGet, "/health/ready", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantChecks, decode(t, w)["checks"])
		})
	}
}
