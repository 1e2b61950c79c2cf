package responses

// TransferResponse represents an escrowed transfer. Amounts are given both as a
// decimal string of the native currency and in wei.
type TransferResponse struct {
	ID        string `json:"id,omitempty"`
	Object    string `json:"object"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	AmountWei string `json:"amount_wei"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
}
