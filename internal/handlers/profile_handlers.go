package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/requests"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// ProfileHandler handles usernames, profiles and payment QR codes
type ProfileHandler struct {
	profiles interfaces.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile godoc
// @Summary Get a profile
// @Description Username, balance and transfer history. Defaults to the connected wallet.
// @Tags profile
// @Produce json
// @Param address query string false "Address"
// @Success 200 {object} responses.ProfileResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), c.Query("address"))
	if err != nil {
		handleServiceError(c, err, "load profile")
		return
	}

	sendSuccess(c, http.StatusOK, responses.FromProfile(profile))
}

// RegisterUsername godoc
// @Summary Register a username for the connected wallet
// @Tags profile
// @Accept json
// @Produce json
// @Param request body requests.RegisterUsernameRequest true "Username"
// @Success 201 {object} responses.TxReceiptResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /api/v1/profile/username [post]
func (h *ProfileHandler) RegisterUsername(c *gin.Context) {
	var req requests.RegisterUsernameRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.profiles.RegisterUsername(c.Request.Context(), req.Username)
	if err != nil {
		handleServiceError(c, err, "register username")
		return
	}

	sendSuccess(c, http.StatusCreated, responses.FromTxReceipt(receipt))
}

// LookupUser resolves an address or username to the registered pair
func (h *ProfileHandler) LookupUser(c *gin.Context) {
	user, err := h.profiles.LookupUser(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handleServiceError(c, err, "look up user")
		return
	}

	sendSuccess(c, http.StatusOK, responses.UserResponse{
		Object:   "user",
		Address:  user.Address.Hex(),
		Username: user.Username,
	})
}

// PaymentQR renders the payment QR code for an address
func (h *ProfileHandler) PaymentQR(c *gin.Context) {
	qr, err := h.profiles.PaymentQR(c.Request.Context(), c.Query("address"))
	if err != nil {
		handleServiceError(c, err, "generate payment QR code")
		return
	}

	sendSuccess(c, http.StatusOK, responses.PaymentQRResponse{
		Object:  "payment_qr",
		Payload: qr.Payload,
		DataURL: qr.DataURL,
	})
}

// ParsePaymentQR decodes scanned QR text into a payment request
func (h *ProfileHandler) ParsePaymentQR(c *gin.Context) {
	var req requests.ParsePaymentQRRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.profiles.ParsePaymentQR(req.Payload)
	if err != nil {
		handleServiceError(c, err, "read payment QR code")
		return
	}

	sendSuccess(c, http.StatusOK, responses.PaymentRequestResponse{
		Object:   "payment_request",
		Address:  payment.Address.Hex(),
		Username: payment.Username,
	})
}
