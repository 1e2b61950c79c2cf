package requests

// SendTransferRequest represents the request body for sending an escrowed transfer.
// Recipient is an address or a registered username; Amount is a decimal amount
// of the native currency.
type SendTransferRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// ClaimTransferRequest represents the request body for claiming transfers.
// Identifier is a transfer id, the sender's address or the sender's username.
type ClaimTransferRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}
