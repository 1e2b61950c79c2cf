package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

var (
	// ErrNoProvider is returned when the session has no connector to talk to
	ErrNoProvider = errors.New("no wallet provider available")
	// ErrNoAccount is returned when the connector has no account to expose
	ErrNoAccount = errors.New("no wallet account available")
	// ErrUnrecognizedChain is returned when switching to a chain the wallet has
	// not been told about; the caller may AddChain and retry
	ErrUnrecognizedChain = errors.New("unrecognized chain")
	// ErrNotConnected is returned by operations that need a connected session
	ErrNotConnected = errors.New("wallet not connected")
)

// Account is what a successful Connect yields
type Account struct {
	Address    common.Address
	BalanceWei *big.Int
	ChainID    *big.Int
	Signer     interfaces.Signer
}

// Connector is the single adapter between the session and a wallet. Event
// registrations return an unsubscribe func.
type Connector interface {
	Connect(ctx context.Context) (*Account, error)
	Disconnect(ctx context.Context) error
	OnAccountChange(func(common.Address)) func()
	OnChainChange(func(*big.Int)) func()
	OnDisconnect(func()) func()
	Backend() interfaces.EthBackend
}

// ChainSwitcher is implemented by connectors that can move between networks
type ChainSwitcher interface {
	SwitchChain(ctx context.Context, chainID *big.Int) error
	AddChain(chain business.Chain) error
}

// Dialer opens a backend for a chain
type Dialer func(ctx context.Context, chain business.Chain) (interfaces.EthBackend, error)
