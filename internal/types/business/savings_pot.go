package business

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
)

// SavingsPotStatus mirrors the contract's savings pot lifecycle
type SavingsPotStatus uint8

const (
	SavingsPotActive = SavingsPotStatus(constants.SavingsPotStatusActive)
	SavingsPotBroken = SavingsPotStatus(constants.SavingsPotStatusBroken)
)

func (s SavingsPotStatus) String() string {
	switch s {
	case SavingsPotActive:
		return "active"
	case SavingsPotBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// SavingsPot is a locked balance owned by one address
type SavingsPot struct {
	ID               common.Hash
	Owner            common.Address
	Name             string
	TargetAmountWei  *big.Int
	CurrentAmountWei *big.Int
	Timestamp        time.Time
	Status           SavingsPotStatus
	Remarks          string
}

// TargetReached reports whether the pot holds at least its target
func (p *SavingsPot) TargetReached() bool {
	if p.TargetAmountWei == nil || p.CurrentAmountWei == nil {
		return false
	}
	return p.CurrentAmountWei.Cmp(p.TargetAmountWei) >= 0
}
