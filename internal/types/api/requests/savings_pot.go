package requests

// CreateSavingsPotRequest represents the request body for creating a savings pot
type CreateSavingsPotRequest struct {
	Name          string `json:"name" binding:"required"`
	TargetAmount  string `json:"target_amount" binding:"required"`
	InitialAmount string `json:"initial_amount,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// ContributeToSavingsPotRequest represents the request body for adding funds to a pot
type ContributeToSavingsPotRequest struct {
	Amount string `json:"amount" binding:"required"`
}
