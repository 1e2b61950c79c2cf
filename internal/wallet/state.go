package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
)

// State is the wallet session snapshot. The zero value is the disconnected
// state.
type State struct {
	Address     *common.Address
	BalanceWei  *big.Int
	ChainID     *big.Int
	Signer      interfaces.Signer
	IsConnected bool
}

// Action is a state transition fed to Reduce
type Action interface {
	actionName() string
}

// Connected replaces the state with a freshly derived account
type Connected struct {
	Address    common.Address
	BalanceWei *big.Int
	ChainID    *big.Int
	Signer     interfaces.Signer
}

// AccountChanged switches the active address without a full reconnect. The
// balance is cleared until the next BalanceUpdated.
type AccountChanged struct {
	Address common.Address
	Signer  interfaces.Signer
}

// BalanceUpdated records a new balance for the active address
type BalanceUpdated struct {
	BalanceWei *big.Int
}

// Disconnected is emitted when the connector drops the session
type Disconnected struct{}

// ConnectFailed resets the state after a failed connection attempt
type ConnectFailed struct {
	Err error
}

// Reset clears the state ahead of a full re-derivation
type Reset struct{}

func (Connected) actionName() string      { return "connected" }
func (AccountChanged) actionName() string { return "account_changed" }
func (BalanceUpdated) actionName() string { return "balance_updated" }
func (Disconnected) actionName() string   { return "disconnected" }
func (ConnectFailed) actionName() string  { return "connect_failed" }
func (Reset) actionName() string          { return "reset" }

// Reduce computes the next state. It never mutates its input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case Connected:
		addr := a.Address
		return State{
			Address:     &addr,
			BalanceWei:  copyInt(a.BalanceWei),
			ChainID:     copyInt(a.ChainID),
			Signer:      a.Signer,
			IsConnected: true,
		}
	case AccountChanged:
		if !state.IsConnected {
			return state
		}
		addr := a.Address
		next := state
		next.Address = &addr
		next.Signer = a.Signer
		next.BalanceWei = nil
		return next
	case BalanceUpdated:
		if !state.IsConnected {
			return state
		}
		next := state
		next.BalanceWei = copyInt(a.BalanceWei)
		return next
	case Disconnected, ConnectFailed, Reset:
		return State{}
	default:
		return state
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
