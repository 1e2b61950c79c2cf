package responses

// SavingsPotResponse represents a savings pot
type SavingsPotResponse struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	TargetReached bool   `json:"target_reached"`
	Timestamp     int64  `json:"timestamp"`
	Status        string `json:"status"`
	Remarks       string `json:"remarks,omitempty"`
}
