package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
)

// ErrEmptyIdentifier is returned when no sender, recipient or id was given
var ErrEmptyIdentifier = errors.New("identifier is required")

// TargetKind tells which contract entry point an identifier routes to
type TargetKind int

const (
	TargetUsername TargetKind = iota
	TargetAddress
	TargetTransferID
)

func (k TargetKind) String() string {
	switch k {
	case TargetAddress:
		return "address"
	case TargetTransferID:
		return "transfer_id"
	default:
		return "username"
	}
}

// Target is an identifier resolved to exactly one of its possible forms
type Target struct {
	Kind       TargetKind
	Address    common.Address
	TransferID common.Hash
	Username   string
}

func (t Target) String() string {
	switch t.Kind {
	case TargetAddress:
		return t.Address.Hex()
	case TargetTransferID:
		return t.TransferID.Hex()
	default:
		return t.Username
	}
}

// ResolveClaimTarget decides how a claim identifier is dispatched:
// 0x-prefixed 66-character input is a transfer id, 0x-prefixed 42-character
// input is the sender's address, anything else is the sender's username
func ResolveClaimTarget(input string) (Target, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Target{}, ErrEmptyIdentifier
	}

	if strings.HasPrefix(input, "0x") {
		switch len(input) {
		case constants.TransferIDHexLength:
			id, err := ParseTransferID(input)
			if err != nil {
				return Target{}, err
			}
			return Target{Kind: TargetTransferID, TransferID: id}, nil
		case constants.AddressHexLength:
			addr, err := ParseAddress(input)
			if err != nil {
				return Target{}, err
			}
			return Target{Kind: TargetAddress, Address: addr}, nil
		}
	}

	return Target{Kind: TargetUsername, Username: input}, nil
}

// ResolveRecipient decides whether a transfer goes to an address or a username
func ResolveRecipient(input string) (Target, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Target{}, ErrEmptyIdentifier
	}

	if IsAddressValid(input) {
		return Target{Kind: TargetAddress, Address: common.HexToAddress(input)}, nil
	}
	if strings.HasPrefix(input, "0x") && len(input) == constants.AddressHexLength {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidAddress, input)
	}

	return Target{Kind: TargetUsername, Username: input}, nil
}
