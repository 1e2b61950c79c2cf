package responses

// ChainResponse represents a supported chain
type ChainResponse struct {
	Object           string `json:"object"`
	ChainID          string `json:"chain_id"`
	HexChainID       string `json:"hex_chain_id"`
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	RPCURL           string `json:"rpc_url"`
	BlockExplorerURL string `json:"block_explorer_url,omitempty"`
	IsTestnet        bool   `json:"is_testnet"`
}

// WalletStatusResponse represents the wallet session
type WalletStatusResponse struct {
	Object      string         `json:"object"`
	IsConnected bool           `json:"is_connected"`
	Address     string         `json:"address,omitempty"`
	Balance     string         `json:"balance,omitempty"`
	ChainID     string         `json:"chain_id,omitempty"`
	Chain       *ChainResponse `json:"chain,omitempty"`
}
