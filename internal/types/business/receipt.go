package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TxReceipt summarizes a confirmed contract write
type TxReceipt struct {
	Operation   string
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	From        common.Address
	ValueWei    *big.Int
	ExplorerURL string
	// EntityID is the transfer, group payment or savings pot id emitted by the
	// transaction, when the operation creates or touches one
	EntityID *common.Hash
}
