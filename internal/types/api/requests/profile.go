package requests

// RegisterUsernameRequest represents the request body for registering a username
type RegisterUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// ParsePaymentQRRequest carries the raw text decoded from a scanned QR code
type ParsePaymentQRRequest struct {
	Payload string `json:"payload" binding:"required"`
}
