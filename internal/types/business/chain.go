package business

import "math/big"

// Chain is a network the wallet can be connected to
type Chain struct {
	ID               *big.Int
	Name             string
	Symbol           string
	RPCURL           string
	BlockExplorerURL string
	Testnet          bool
}

// HexID renders the chain id the way wallet RPCs expect it
func (c Chain) HexID() string {
	if c.ID == nil {
		return "0x0"
	}
	return "0x" + c.ID.Text(16)
}
