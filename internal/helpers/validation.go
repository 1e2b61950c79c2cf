package helpers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/constants"
)

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidTransferID = errors.New("invalid transfer id")
	ErrInvalidUsername   = errors.New("invalid username")
)

// IsAddressValid checks if the provided string is a valid Ethereum address
// It verifies:
// 1. The address is exactly 42 characters long (including 0x prefix)
// 2. The address starts with "0x"
// 3. The remaining 40 characters are valid hexadecimal
func IsAddressValid(address string) bool {
	return hasHexBody(address, constants.AddressHexLength)
}

// IsTransferIDValid checks if the provided string is a 32-byte hex identifier,
// the format used for transfer, group payment and savings pot ids
func IsTransferIDValid(id string) bool {
	return hasHexBody(id, constants.TransferIDHexLength)
}

func hasHexBody(s string, length int) bool {
	if len(s) != length {
		return false
	}
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// ParseAddress validates and converts a hex address
func ParseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if !IsAddressValid(address) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}

// ParseTransferID validates and converts a 32-byte hex id
func ParseTransferID(id string) (common.Hash, error) {
	id = strings.TrimSpace(id)
	if !IsTransferIDValid(id) {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidTransferID, id)
	}
	return common.HexToHash(id), nil
}

// ValidateUsername enforces the client-side username rules: 3-32 characters,
// letters, digits and underscores, not starting with 0x so it can never be
// mistaken for an address or id
func ValidateUsername(username string) error {
	if len(username) < constants.UsernameMinLength || len(username) > constants.UsernameMaxLength {
		return fmt.Errorf("%w: must be between %d and %d characters", ErrInvalidUsername,
			constants.UsernameMinLength, constants.UsernameMaxLength)
	}
	if strings.HasPrefix(strings.ToLower(username), "0x") {
		return fmt.Errorf("%w: must not start with 0x", ErrInvalidUsername)
	}
	for _, r := range username {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') || r > unicode.MaxASCII {
			return fmt.Errorf("%w: only letters, digits and underscores are allowed", ErrInvalidUsername)
		}
	}
	return nil
}
