package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	wallet interfaces.WalletSession
	db     Pinger
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewHealthHandler creates a health handler. db may be nil when the activity
// store is disabled.
func NewHealthHandler(wallet interfaces.WalletSession, db Pinger) *HealthHandler {
	return &HealthHandler{wallet: wallet, db: db}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready reports whether the wallet session is connected and the database,
// if configured, answers
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]string{}
	ready := true

	if h.wallet != nil {
		if h.wallet.Status().IsConnected {
			checks["wallet"] = "connected"
		} else {
			checks["wallet"] = "disconnected"
			ready = false
		}
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unavailable"
			ready = false
		} else {
			checks["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: checks})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
}
