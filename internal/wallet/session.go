package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// Reloader discards everything derived from the previous chain. It is invoked
// on every chain change before the session reconnects.
type Reloader interface {
	Reload(ctx context.Context, reason string)
}

// ReloaderFunc adapts a function to Reloader
type ReloaderFunc func(ctx context.Context, reason string)

func (f ReloaderFunc) Reload(ctx context.Context, reason string) { f(ctx, reason) }

type noopReloader struct{}

func (noopReloader) Reload(context.Context, string) {}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithReloader sets the chain-change reloader
func WithReloader(r Reloader) SessionOption {
	return func(s *Session) {
		s.reloader = r
	}
}

// WithEventTimeout bounds the reconnect triggered by connector events
func WithEventTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.eventTimeout = d
	}
}

// Session binds a connector to a store and keeps the two in sync
type Session struct {
	connector    Connector
	store        *Store
	chains       *ChainRegistry
	reloader     Reloader
	eventTimeout time.Duration

	connectMu    sync.Mutex
	unsubscribes []func()
	logger       *zap.Logger
}

// NewSession creates a session. connector may be nil, in which case the
// session stays disconnected and Connect returns ErrNoProvider.
func NewSession(connector Connector, chains *ChainRegistry, opts ...SessionOption) *Session {
	if chains == nil {
		chains = DefaultChainRegistry()
	}
	s := &Session{
		connector:    connector,
		store:        NewStore(),
		chains:       chains,
		reloader:     noopReloader{},
		eventTimeout: 30 * time.Second,
		logger:       logger.Log.With(zap.String("component", "wallet_session")),
	}
	for _, opt := range opts {
		opt(s)
	}

	if connector != nil {
		s.unsubscribes = append(s.unsubscribes,
			connector.OnAccountChange(s.handleAccountChange),
			connector.OnChainChange(s.handleChainChange),
			connector.OnDisconnect(s.handleDisconnect),
		)
	}
	return s
}

// Close detaches the session from the connector's events
func (s *Session) Close() {
	for _, unsubscribe := range s.unsubscribes {
		unsubscribe()
	}
	s.unsubscribes = nil
}

// Store exposes the underlying state store for subscriptions
func (s *Session) Store() *Store {
	return s.store
}

// State returns the current snapshot
func (s *Session) State() State {
	return s.store.State()
}

// Connect derives the session state from the connector
func (s *Session) Connect(ctx context.Context) error {
	if s.connector == nil {
		s.logger.Warn("No wallet provider configured")
		return ErrNoProvider
	}

	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	account, err := s.connector.Connect(ctx)
	if err != nil {
		s.store.Dispatch(ConnectFailed{Err: err})
		s.logger.Error("Failed to connect wallet", zap.Error(err))
		return fmt.Errorf("failed to connect wallet: %w", err)
	}

	s.store.Dispatch(Connected{
		Address:    account.Address,
		BalanceWei: account.BalanceWei,
		ChainID:    account.ChainID,
		Signer:     account.Signer,
	})
	s.logger.Info("Wallet connected",
		zap.String("address", account.Address.Hex()),
		zap.String("chain_id", account.ChainID.String()))
	return nil
}

// Disconnect drops the session
func (s *Session) Disconnect(ctx context.Context) error {
	if s.connector != nil {
		if err := s.connector.Disconnect(ctx); err != nil {
			s.logger.Warn("Connector disconnect failed", zap.Error(err))
		}
	}
	s.store.Dispatch(Disconnected{})
	return nil
}

// RefreshBalance re-reads the balance of the connected address
func (s *Session) RefreshBalance(ctx context.Context) error {
	state := s.store.State()
	if !state.IsConnected || state.Address == nil {
		return ErrNotConnected
	}
	backend := s.Backend()
	if backend == nil {
		return ErrNoProvider
	}

	balance, err := backend.BalanceAt(ctx, *state.Address, nil)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	s.store.Dispatch(BalanceUpdated{BalanceWei: balance})
	return nil
}

// SwitchChain asks the connector to move to chainID. A chain the wallet does
// not know yet is added from the registry and the switch retried.
func (s *Session) SwitchChain(ctx context.Context, chainID *big.Int) error {
	if s.connector == nil {
		return ErrNoProvider
	}
	switcher, ok := s.connector.(ChainSwitcher)
	if !ok {
		return errors.New("wallet provider cannot switch chains")
	}

	err := switcher.SwitchChain(ctx, chainID)
	if !errors.Is(err, ErrUnrecognizedChain) {
		return err
	}

	chain, known := s.chains.Get(chainID)
	if !known {
		return err
	}
	if addErr := switcher.AddChain(chain); addErr != nil {
		return fmt.Errorf("failed to add chain %s: %w", chainID, addErr)
	}
	return switcher.SwitchChain(ctx, chainID)
}

// Signer returns the active signer, or nil while disconnected
func (s *Session) Signer() interfaces.Signer {
	state := s.store.State()
	if !state.IsConnected {
		return nil
	}
	return state.Signer
}

// Backend returns the connector's backend, or nil without a provider
func (s *Session) Backend() interfaces.EthBackend {
	if s.connector == nil {
		return nil
	}
	return s.connector.Backend()
}

// ChainID returns the connected chain id, or nil while disconnected
func (s *Session) ChainID() *big.Int {
	return s.store.State().ChainID
}

// Status renders the state for callers outside the package
func (s *Session) Status() business.WalletStatus {
	state := s.store.State()
	status := business.WalletStatus{
		Address:     state.Address,
		BalanceWei:  state.BalanceWei,
		ChainID:     state.ChainID,
		IsConnected: state.IsConnected,
	}
	if chain, ok := s.chains.Get(state.ChainID); ok {
		status.Chain = &chain
	}
	return status
}

// Chains lists the networks the application supports
func (s *Session) Chains() []business.Chain {
	return s.chains.List()
}

// ChainRegistry returns the session's chain registry
func (s *Session) ChainRegistry() *ChainRegistry {
	return s.chains
}

func (s *Session) eventContext() (context.Context, context.CancelFunc) {
	if s.eventTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.eventTimeout)
}

func (s *Session) handleAccountChange(addr common.Address) {
	s.logger.Info("Wallet account changed", zap.String("address", addr.Hex()))

	ctx, cancel := s.eventContext()
	defer cancel()
	if err := s.Connect(ctx); err != nil {
		s.logger.Warn("Reconnect after account change failed", zap.Error(err))
	}
}

// handleChainChange never patches the chain id in place: everything derived
// from the old chain is dropped and rebuilt.
func (s *Session) handleChainChange(chainID *big.Int) {
	s.logger.Info("Wallet chain changed, reloading", zap.String("chain_id", chainID.String()))

	ctx, cancel := s.eventContext()
	defer cancel()

	s.reloader.Reload(ctx, "chain_changed")
	s.store.Dispatch(Reset{})
	if err := s.Connect(ctx); err != nil {
		s.logger.Warn("Reconnect after chain change failed", zap.Error(err))
	}
}

func (s *Session) handleDisconnect() {
	s.logger.Info("Wallet disconnected")
	s.store.Dispatch(Disconnected{})
}

var _ interfaces.WalletSession = (*Session)(nil)
