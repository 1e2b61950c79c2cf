package requests

// CreateGroupPaymentRequest represents the request body for creating a group payment
type CreateGroupPaymentRequest struct {
	Recipient       string `json:"recipient" binding:"required"`
	NumParticipants uint64 `json:"num_participants" binding:"required"`
	TotalAmount     string `json:"total_amount" binding:"required"`
	Remarks         string `json:"remarks,omitempty"`
}
