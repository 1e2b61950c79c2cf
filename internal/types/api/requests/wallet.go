package requests

// SwitchChainRequest selects one of the supported chains by numeric id
type SwitchChainRequest struct {
	ChainID int64 `json:"chain_id" binding:"required"`
}
