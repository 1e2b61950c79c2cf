package business

import "github.com/ethereum/go-ethereum/common"

// PaymentQR is a scannable payment request for a user
type PaymentQR struct {
	Payload string
	// DataURL is the PNG rendering of Payload as a data: URL
	DataURL string
}

// PaymentRequest is a decoded payment QR code
type PaymentRequest struct {
	Address  common.Address
	Username string
}
