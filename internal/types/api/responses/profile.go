package responses

// ProfileResponse is the profile page: username, balance and transfer history
type ProfileResponse struct {
	Object    string             `json:"object"`
	Address   string             `json:"address"`
	Username  string             `json:"username,omitempty"`
	Balance   string             `json:"balance"`
	Transfers []TransferResponse `json:"transfers"`
}

// UserResponse pairs an address with its username
type UserResponse struct {
	Object   string `json:"object"`
	Address  string `json:"address"`
	Username string `json:"username,omitempty"`
}

// PaymentQRResponse carries the QR payload and its PNG rendering
type PaymentQRResponse struct {
	Object  string `json:"object"`
	Payload string `json:"payload"`
	DataURL string `json:"data_url"`
}

// PaymentRequestResponse is a decoded payment QR code
type PaymentRequestResponse struct {
	Object   string `json:"object"`
	Address  string `json:"address"`
	Username string `json:"username,omitempty"`
}
