package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/requests"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// TransferHandler handles escrowed transfer requests
type TransferHandler struct {
	transfers interfaces.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transfers interfaces.TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

// Send godoc
// @Summary Send a protected transfer
// @Description Escrows the amount for the recipient, who can claim it until the sender refunds it
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body requests.SendTransferRequest true "Recipient address or username and decimal amount"
// @Success 201 {object} responses.TxReceiptResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /api/v1/transfers [post]
func (h *TransferHandler) Send(c *gin.Context) {
	var req requests.SendTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.transfers.Send(c.Request.Context(), req.Recipient, req.Amount)
	if err != nil {
		handleServiceError(c, err, "send transfer")
		return
	}

	sendSuccess(c, http.StatusCreated, responses.FromTxReceipt(receipt))
}

// Claim godoc
// @Summary Claim transfers
// @Description Claims by transfer id (0x + 64 hex), by sender address (0x + 40 hex) or by sender username
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body requests.ClaimTransferRequest true "Claim identifier"
// @Success 200 {object} responses.TxReceiptResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /api/v1/transfers/claim [post]
func (h *TransferHandler) Claim(c *gin.Context) {
	var req requests.ClaimTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.transfers.Claim(c.Request.Context(), req.Identifier)
	if err != nil {
		handleServiceError(c, err, "claim transfer")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTxReceipt(receipt))
}

// Refund godoc
// @Summary Refund a transfer
// @Tags transfers
// @Produce json
// @Param transfer_id path string true "Transfer ID"
// @Success 200 {object} responses.TxReceiptResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /api/v1/transfers/{transfer_id}/refund [post]
func (h *TransferHandler) Refund(c *gin.Context) {
	receipt, err := h.transfers.Refund(c.Request.Context(), c.Param("transfer_id"))
	if err != nil {
		handleServiceError(c, err, "refund transfer")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTxReceipt(receipt))
}

// GetTransfer godoc
// @Summary Get a transfer
// @Tags transfers
// @Produce json
// @Param transfer_id path string true "Transfer ID"
// @Success 200 {object} responses.TransferResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /api/v1/transfers/{transfer_id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	transfer, err := h.transfers.GetTransfer(c.Request.Context(), c.Param("transfer_id"))
	if err != nil {
		handleServiceError(c, err, "load transfer")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTransfer(*transfer))
}

// ListTransfers godoc
// @Summary List a user's transfers
// @Description Lists transfers sent or received by address, newest first. Defaults to the connected wallet.
// @Tags transfers
// @Produce json
// @Param address query string false "Address"
// @Success 200 {object} responses.ListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /api/v1/transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	transfers, err := h.transfers.ListTransfers(c.Request.Context(), c.Query("address"))
	if err != nil {
		handleServiceError(c, err, "load transfers")
		return
	}

	sendList(c, responses.FromTransfers(transfers))
}
