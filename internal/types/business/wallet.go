package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WalletStatus is a point-in-time snapshot of the wallet session
type WalletStatus struct {
	Address     *common.Address
	BalanceWei  *big.Int
	ChainID     *big.Int
	IsConnected bool
	Chain       *Chain
}
