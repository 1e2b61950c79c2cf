package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/api/requests"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// SavingsPotHandler handles savings pots
type SavingsPotHandler struct {
	pots interfaces.SavingsPotService
}

// NewSavingsPotHandler creates a new savings pot handler
func NewSavingsPotHandler(pots interfaces.SavingsPotService) *SavingsPotHandler {
	return &SavingsPotHandler{pots: pots}
}

func (h *SavingsPotHandler) Create(c *gin.Context) {
	var req requests.CreateSavingsPotRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.pots.Create(c.Request.Context(), params.CreateSavingsPotParams{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		InitialAmount: req.InitialAmount,
		Remarks:       req.Remarks,
	})
	if err != nil {
		handleServiceError(c, err, "create savings pot")
		return
	}

	sendSuccess(c, http.StatusCreated, responses.FromTxReceipt(receipt))
}

func (h *SavingsPotHandler) Contribute(c *gin.Context) {
	var req requests.ContributeToSavingsPotRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.pots.Contribute(c.Request.Context(), c.Param("pot_id"), req.Amount)
	if err != nil {
		handleServiceError(c, err, "contribute to savings pot")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTxReceipt(receipt))
}

// Break releases a pot's balance to its owner. A broken pot cannot be reused.
func (h *SavingsPotHandler) Break(c *gin.Context) {
	receipt, err := h.pots.Break(c.Request.Context(), c.Param("pot_id"))
	if err != nil {
		handleServiceError(c, err, "break savings pot")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTxReceipt(receipt))
}

func (h *SavingsPotHandler) Get(c *gin.Context) {
	pot, err := h.pots.Get(c.Request.Context(), c.Param("pot_id"))
	if err != nil {
		handleServiceError(c, err, "load savings pot")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromSavingsPot(*pot))
}

func (h *SavingsPotHandler) ListForUser(c *gin.Context) {
	pots, err := h.pots.ListForUser(c.Request.Context(), c.Query("address"))
	if err != nil {
		handleServiceError(c, err, "load savings pots")
		return
	}

	sendList(c, responses.FromSavingsPots(pots))
}
