package business

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
)

// TransferStatus mirrors the contract's transfer lifecycle
type TransferStatus uint8

const (
	TransferPending  = TransferStatus(constants.TransferStatusPending)
	TransferClaimed  = TransferStatus(constants.TransferStatusClaimed)
	TransferRefunded = TransferStatus(constants.TransferStatusRefunded)
)

func (s TransferStatus) String() string {
	switch s {
	case TransferPending:
		return "pending"
	case TransferClaimed:
		return "claimed"
	case TransferRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further claim or refund is possible
func (s TransferStatus) IsTerminal() bool {
	return s == TransferClaimed || s == TransferRefunded
}

// Transfer is a read-only mirror of an escrowed transfer. ID is zero when the
// contract view that produced it does not return identifiers.
type Transfer struct {
	ID        common.Hash
	Sender    common.Address
	Recipient common.Address
	AmountWei *big.Int
	Timestamp time.Time
	Status    TransferStatus
	Remarks   string
}
