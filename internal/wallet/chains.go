package wallet

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// ChainRegistry is the set of networks the application knows how to reach
type ChainRegistry struct {
	mu     sync.RWMutex
	chains map[string]business.Chain
}

// NewChainRegistry creates a registry holding the given chains
func NewChainRegistry(chains ...business.Chain) *ChainRegistry {
	r := &ChainRegistry{chains: make(map[string]business.Chain)}
	for _, c := range chains {
		_ = r.Add(c)
	}
	return r
}

// DefaultChainRegistry returns a registry of the built-in networks
func DefaultChainRegistry() *ChainRegistry {
	chains := make([]business.Chain, 0, len(constants.SupportedChains))
	for _, def := range constants.SupportedChains {
		chains = append(chains, ChainFromDefinition(def))
	}
	return NewChainRegistry(chains...)
}

// ChainFromDefinition converts a built-in chain definition
func ChainFromDefinition(def constants.ChainDefinition) business.Chain {
	return business.Chain{
		ID:               big.NewInt(def.ID),
		Name:             def.Name,
		Symbol:           def.Symbol,
		RPCURL:           def.RPCURL,
		BlockExplorerURL: def.BlockExplorerURL,
		Testnet:          def.Testnet,
	}
}

// Add registers or replaces a chain
func (r *ChainRegistry) Add(chain business.Chain) error {
	if chain.ID == nil || chain.ID.Sign() <= 0 {
		return errors.New("chain id must be positive")
	}
	if chain.RPCURL == "" {
		return fmt.Errorf("chain %s has no RPC URL", chain.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[chain.ID.String()] = chain
	return nil
}

// Get looks up a chain by id
func (r *ChainRegistry) Get(id *big.Int) (business.Chain, bool) {
	if id == nil {
		return business.Chain{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chains[id.String()]
	return c, ok
}

// List returns all chains ordered by id
func (r *ChainRegistry) List() []business.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]business.Chain, 0, len(r.chains))
	for _, c := range r.chains {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Cmp(out[j].ID) < 0 })
	return out
}

// ExplorerTxURL links a transaction on the chain's block explorer, or returns
// "" when the chain has no explorer configured
func (r *ChainRegistry) ExplorerTxURL(chainID *big.Int, txHash common.Hash) string {
	chain, ok := r.Get(chainID)
	if !ok || chain.BlockExplorerURL == "" {
		return ""
	}
	return strings.TrimSuffix(chain.BlockExplorerURL, "/") + "/tx/" + txHash.Hex()
}
