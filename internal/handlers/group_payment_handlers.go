package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/api/requests"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// GroupPaymentHandler handles split payments
type GroupPaymentHandler struct {
	payments interfaces.GroupPaymentService
}

// NewGroupPaymentHandler creates a new group payment handler
func NewGroupPaymentHandler(payments interfaces.GroupPaymentService) *GroupPaymentHandler {
	return &GroupPaymentHandler{payments: payments}
}

// Create godoc
// @Summary Create a group payment
// @Description The creator pays the first share; the payment completes once every participant has paid
// @Tags group-payments
// @Accept json
// @Produce json
// @Param request body requests.CreateGroupPaymentRequest true "Group payment"
// @Success 201 {object} responses.TxReceiptResponse
// @Router /api/v1/group-payments [post]
func (h *GroupPaymentHandler) Create(c *gin.Context) {
	var req requests.CreateGroupPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.payments.Create(c.Request.Context(), params.CreateGroupPaymentParams{
		Recipient:       req.Recipient,
		NumParticipants: req.NumParticipants,
		TotalAmount:     req.TotalAmount,
		Remarks:         req.Remarks,
	})
	if err != nil {
		handleServiceError(c, err, "create group payment")
		return
	}

	sendSuccess(c, http.StatusCreated, responses.FromTxReceipt(receipt))
}

// Contribute pays one share of a pending group payment
func (h *GroupPaymentHandler) Contribute(c *gin.Context) {
	receipt, err := h.payments.Contribute(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		handleServiceError(c, err, "contribute to group payment")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromTxReceipt(receipt))
}

func (h *GroupPaymentHandler) Get(c *gin.Context) {
	payment, err := h.payments.Get(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		handleServiceError(c, err, "load group payment")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromGroupPayment(*payment))
}

// ListForUser returns the group payments an address created or joined
func (h *GroupPaymentHandler) ListForUser(c *gin.Context) {
	payments, err := h.payments.ListForUser(c.Request.Context(), c.Query("address"))
	if err != nil {
		handleServiceError(c, err, "load group payments")
		return
	}

	sendSuccess(c, http.StatusOK, responses.GroupPaymentsResponse{
		Object:        "group_payments",
		Created:       responses.FromGroupPayments(payments.Created),
		Participating: responses.FromGroupPayments(payments.Participating),
	})
}
