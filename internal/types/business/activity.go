package business

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ContractEvent is a decoded contract log as mirrored by the indexer
type ContractEvent struct {
	Name        string
	ChainID     int64
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
	// EntityID is the transfer, group payment or pot the event refers to
	EntityID *common.Hash
	// Actor initiated the action; Counterpart is the other party, if any
	Actor       *common.Address
	Counterpart *common.Address
	AmountWei   *big.Int
	// Label carries the username or savings pot name for events that have one
	Label      string
	ObservedAt time.Time
}
