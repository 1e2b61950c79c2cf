package responses

// ContractEventResponse represents an indexed contract event
type ContractEventResponse struct {
	Object      string `json:"object"`
	Event       string `json:"event"`
	ChainID     int64  `json:"chain_id"`
	BlockNumber uint64 `json:"block_number"`
	TxHash      string `json:"tx_hash"`
	LogIndex    uint   `json:"log_index"`
	EntityID    string `json:"entity_id,omitempty"`
	Actor       string `json:"actor,omitempty"`
	Counterpart string `json:"counterpart,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Label       string `json:"label,omitempty"`
	ObservedAt  int64  `json:"observed_at"`
}
