package responses

// TxReceiptResponse represents a confirmed contract write
type TxReceiptResponse struct {
	Object      string `json:"object"`
	Operation   string `json:"operation"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
	From        string `json:"from"`
	Value       string `json:"value"`
	ValueWei    string `json:"value_wei"`
	ExplorerURL string `json:"explorer_url,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
}
