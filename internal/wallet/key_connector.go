package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// KeyConnector is a Connector backed by a local signer and a JSON-RPC
// endpoint. It only knows the chains it was created with or told about via
// AddChain.
type KeyConnector struct {
	mu      sync.Mutex
	signer  interfaces.Signer
	dial    Dialer
	chains  map[string]business.Chain
	current business.Chain
	backend interfaces.EthBackend

	listenersMu     sync.Mutex
	nextListenerID  int
	accountHandlers map[int]func(common.Address)
	chainHandlers   map[int]func(*big.Int)
	disconnectFns   map[int]func()

	logger *zap.Logger
}

// NewKeyConnector creates a connector for signer on chain
func NewKeyConnector(signer interfaces.Signer, chain business.Chain, dial Dialer) *KeyConnector {
	return &KeyConnector{
		signer:          signer,
		dial:            dial,
		chains:          map[string]business.Chain{chain.ID.String(): chain},
		current:         chain,
		accountHandlers: make(map[int]func(common.Address)),
		chainHandlers:   make(map[int]func(*big.Int)),
		disconnectFns:   make(map[int]func()),
		logger:          logger.Log,
	}
}

// Connect dials the current chain if needed and derives the account
func (k *KeyConnector) Connect(ctx context.Context) (*Account, error) {
	k.mu.Lock()
	signer := k.signer
	chain := k.current
	backend := k.backend
	k.mu.Unlock()

	if signer == nil {
		return nil, ErrNoAccount
	}

	if backend == nil {
		var err error
		backend, err = k.dial(ctx, chain)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", chain.Name, err)
		}
		k.mu.Lock()
		k.backend = backend
		k.mu.Unlock()
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if chain.ID != nil && chainID.Cmp(chain.ID) != 0 {
		k.logger.Warn("RPC endpoint reports a different chain id than configured",
			zap.String("configured", chain.ID.String()),
			zap.String("reported", chainID.String()))
	}

	balance, err := backend.BalanceAt(ctx, signer.Address(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &Account{
		Address:    signer.Address(),
		BalanceWei: balance,
		ChainID:    chainID,
		Signer:     signer,
	}, nil
}

// Disconnect notifies disconnect listeners. The backend is kept for reuse.
func (k *KeyConnector) Disconnect(ctx context.Context) error {
	k.listenersMu.Lock()
	handlers := make([]func(), 0, len(k.disconnectFns))
	for _, fn := range k.disconnectFns {
		handlers = append(handlers, fn)
	}
	k.listenersMu.Unlock()

	for _, fn := range handlers {
		fn()
	}
	return nil
}

// Backend returns the backend for the current chain, or nil before the first
// Connect
func (k *KeyConnector) Backend() interfaces.EthBackend {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.backend
}

// SwitchAccount replaces the signer and emits an account change
func (k *KeyConnector) SwitchAccount(signer interfaces.Signer) {
	k.mu.Lock()
	k.signer = signer
	k.mu.Unlock()

	var addr common.Address
	if signer != nil {
		addr = signer.Address()
	}

	k.listenersMu.Lock()
	handlers := make([]func(common.Address), 0, len(k.accountHandlers))
	for _, fn := range k.accountHandlers {
		handlers = append(handlers, fn)
	}
	k.listenersMu.Unlock()

	for _, fn := range handlers {
		fn(addr)
	}
}

// SwitchChain moves to a known chain and emits a chain change
func (k *KeyConnector) SwitchChain(ctx context.Context, chainID *big.Int) error {
	k.mu.Lock()
	chain, ok := k.chains[chainID.String()]
	k.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnrecognizedChain, chainID)
	}

	backend, err := k.dial(ctx, chain)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", chain.Name, err)
	}

	k.mu.Lock()
	k.current = chain
	k.backend = backend
	k.mu.Unlock()

	k.logger.Info("Switched chain", zap.String("chain_id", chainID.String()), zap.String("name", chain.Name))

	k.listenersMu.Lock()
	handlers := make([]func(*big.Int), 0, len(k.chainHandlers))
	for _, fn := range k.chainHandlers {
		handlers = append(handlers, fn)
	}
	k.listenersMu.Unlock()

	for _, fn := range handlers {
		fn(new(big.Int).Set(chainID))
	}
	return nil
}

// AddChain makes a chain available to SwitchChain
func (k *KeyConnector) AddChain(chain business.Chain) error {
	if chain.ID == nil || chain.RPCURL == "" {
		return fmt.Errorf("chain requires an id and an RPC URL")
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.chains[chain.ID.String()] = chain
	return nil
}

// CurrentChain returns the chain the connector is on
func (k *KeyConnector) CurrentChain() business.Chain {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current
}

// OnAccountChange registers an account change handler
func (k *KeyConnector) OnAccountChange(fn func(common.Address)) func() {
	k.listenersMu.Lock()
	defer k.listenersMu.Unlock()
	id := k.nextListenerID
	k.nextListenerID++
	k.accountHandlers[id] = fn
	return k.unsubscribe(func() { delete(k.accountHandlers, id) })
}

// OnChainChange registers a chain change handler
func (k *KeyConnector) OnChainChange(fn func(*big.Int)) func() {
	k.listenersMu.Lock()
	defer k.listenersMu.Unlock()
	id := k.nextListenerID
	k.nextListenerID++
	k.chainHandlers[id] = fn
	return k.unsubscribe(func() { delete(k.chainHandlers, id) })
}

// OnDisconnect registers a disconnect handler
func (k *KeyConnector) OnDisconnect(fn func()) func() {
	k.listenersMu.Lock()
	defer k.listenersMu.Unlock()
	id := k.nextListenerID
	k.nextListenerID++
	k.disconnectFns[id] = fn
	return k.unsubscribe(func() { delete(k.disconnectFns, id) })
}

func (k *KeyConnector) unsubscribe(remove func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			k.listenersMu.Lock()
			defer k.listenersMu.Unlock()
			remove()
		})
	}
}
