package handlers

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/requests"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// WalletHandler exposes the server's wallet session
type WalletHandler struct {
	wallet interfaces.WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(wallet interfaces.WalletService) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

func (h *WalletHandler) Status(c *gin.Context) {
	status, err := h.wallet.Status(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "load wallet status")
		return
	}
	sendSuccess(c, http.StatusOK, responses.FromWalletStatus(status))
}

func (h *WalletHandler) Connect(c *gin.Context) {
	status, err := h.wallet.Connect(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "connect wallet")
		return
	}
	sendSuccess(c, http.StatusOK, responses.FromWalletStatus(status))
}

func (h *WalletHandler) Disconnect(c *gin.Context) {
	if err := h.wallet.Disconnect(c.Request.Context()); err != nil {
		handleServiceError(c, err, "disconnect wallet")
		return
	}
	sendSuccessMessage(c, http.StatusOK, "Wallet disconnected")
}

// SwitchChain moves the session to another supported chain. The session
// reloads from scratch, so the returned status reflects the new chain.
func (h *WalletHandler) SwitchChain(c *gin.Context) {
	var req requests.SwitchChainRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.wallet.SwitchChain(c.Request.Context(), big.NewInt(req.ChainID))
	if err != nil {
		handleServiceError(c, err, "switch network")
		return
	}
	sendSuccess(c, http.StatusOK, responses.FromWalletStatus(status))
}

func (h *WalletHandler) ListChains(c *gin.Context) {
	chains := h.wallet.ListChains()
	out := make([]responses.ChainResponse, 0, len(chains))
	for _, chain := range chains {
		out = append(out, responses.FromChain(chain))
	}
	sendList(c, out)
}
