package responses

// GroupPaymentResponse represents a group payment
type GroupPaymentResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Creator         string `json:"creator"`
	Recipient       string `json:"recipient"`
	TotalAmount     string `json:"total_amount"`
	AmountPerPerson string `json:"amount_per_person"`
	AmountCollected string `json:"amount_collected"`
	Remaining       string `json:"remaining"`
	NumParticipants uint64 `json:"num_participants"`
	Timestamp       int64  `json:"timestamp"`
	Status          string `json:"status"`
	Remarks         string `json:"remarks,omitempty"`
}

// GroupPaymentsResponse splits a user's group payments by role
type GroupPaymentsResponse struct {
	Object        string                 `json:"object"`
	Created       []GroupPaymentResponse `json:"created"`
	Participating []GroupPaymentResponse `json:"participating"`
}
