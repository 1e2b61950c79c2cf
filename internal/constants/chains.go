package constants

// Chain IDs of the networks the contract is deployed on
const (
	NeoXTestnetChainID     int64 = 12227332
	EduChainTestnetChainID int64 = 656476
)

// ChainDefinition describes a network the wallet can switch to
type ChainDefinition struct {
	ID               int64
	Name             string
	Symbol           string
	RPCURL           string
	BlockExplorerURL string
	Testnet          bool
}

// SupportedChains is the built-in network list. The first entry is the default.
var SupportedChains = []ChainDefinition{
	{
		ID:               NeoXTestnetChainID,
		Name:             "NeoX Testnet",
		Symbol:           "GAS",
		RPCURL:           "https://neoxt4seed1.ngd.network/",
		BlockExplorerURL: "https://xt4scan.ngd.network/",
		Testnet:          true,
	},
	{
		ID:               EduChainTestnetChainID,
		Name:             "EduChain Testnet",
		Symbol:           "EDU",
		RPCURL:           "https://open-campus-codex-sepolia.drpc.org/",
		BlockExplorerURL: "https://opencampus-codex.blockscout.com/",
		Testnet:          true,
	},
}
