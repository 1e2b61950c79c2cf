package business

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
)

// GroupPaymentStatus mirrors the contract's group payment lifecycle
type GroupPaymentStatus uint8

const (
	GroupPaymentPending   = GroupPaymentStatus(constants.GroupPaymentStatusPending)
	GroupPaymentCompleted = GroupPaymentStatus(constants.GroupPaymentStatusCompleted)
	GroupPaymentCancelled = GroupPaymentStatus(constants.GroupPaymentStatusCancelled)
)

func (s GroupPaymentStatus) String() string {
	switch s {
	case GroupPaymentPending:
		return "pending"
	case GroupPaymentCompleted:
		return "completed"
	case GroupPaymentCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GroupPayment is a payment split between participants and released to the
// recipient once the collected amount reaches the total
type GroupPayment struct {
	ID                 common.Hash
	Creator            common.Address
	Recipient          common.Address
	TotalAmountWei     *big.Int
	AmountPerPersonWei *big.Int
	NumParticipants    uint64
	AmountCollectedWei *big.Int
	Timestamp          time.Time
	Status             GroupPaymentStatus
	Remarks            string
}

// RemainingWei is the amount still missing before the payment completes
func (g *GroupPayment) RemainingWei() *big.Int {
	if g.TotalAmountWei == nil {
		return new(big.Int)
	}
	collected := g.AmountCollectedWei
	if collected == nil {
		collected = new(big.Int)
	}
	remaining := new(big.Int).Sub(g.TotalAmountWei, collected)
	if remaining.Sign() < 0 {
		return new(big.Int)
	}
	return remaining
}

// GroupPayments splits a user's group payments into the ones they created and
// the ones they contributed to
type GroupPayments struct {
	Created       []GroupPayment
	Participating []GroupPayment
}
