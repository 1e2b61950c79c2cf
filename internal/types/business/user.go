package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// UserProfile is the contract's per-address index of usernames and entity ids
type UserProfile struct {
	Address                   common.Address
	Username                  string
	TransferIDs               []common.Hash
	GroupPaymentIDs           []common.Hash
	ParticipatedGroupPayments []common.Hash
	SavingsPotIDs             []common.Hash
}

// HasUsername reports whether a username is registered for the address
func (p *UserProfile) HasUsername() bool {
	return p != nil && p.Username != ""
}

// ProfileOverview is the profile page payload: who the user is, what they hold,
// and their transfer history
type ProfileOverview struct {
	Address    common.Address
	Username   string
	BalanceWei *big.Int
	Transfers  []Transfer
}

// User pairs an address with its registered username
type User struct {
	Address  common.Address
	Username string
}
