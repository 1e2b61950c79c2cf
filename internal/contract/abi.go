// Package contract holds the ProtectedPay ABI and the typed encoding and
// decoding of its calls, return values and events.
package contract

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed protectedpay.abi.json
var protectedPayABIJSON string

// Method names
const (
	MethodRegisterUsername         = "registerUsername"
	MethodSendToAddress            = "sendToAddress"
	MethodSendToUsername           = "sendToUsername"
	MethodClaimTransferByAddress   = "claimTransferByAddress"
	MethodClaimTransferByUsername  = "claimTransferByUsername"
	MethodClaimTransferByID        = "claimTransferById"
	MethodRefundTransfer           = "refundTransfer"
	MethodGetUserTransfers         = "getUserTransfers"
	MethodGetTransferDetails       = "getTransferDetails"
	MethodGetUserByAddress         = "getUserByAddress"
	MethodGetUserByUsername        = "getUserByUsername"
	MethodGetUserProfile           = "getUserProfile"
	MethodCreateGroupPayment       = "createGroupPayment"
	MethodContributeToGroupPayment = "contributeToGroupPayment"
	MethodGetGroupPaymentDetails   = "getGroupPaymentDetails"
	MethodCreateSavingsPot         = "createSavingsPot"
	MethodContributeToSavingsPot   = "contributeToSavingsPot"
	MethodBreakPot                 = "breakPot"
	MethodGetSavingsPotDetails     = "getSavingsPotDetails"
)

var (
	parsedABI   abi.ABI
	parseErr    error
	parseABIOne sync.Once
)

// ABI returns the parsed ProtectedPay ABI
func ABI() (abi.ABI, error) {
	parseABIOne.Do(func() {
		parsedABI, parseErr = abi.JSON(strings.NewReader(protectedPayABIJSON))
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse ProtectedPay ABI: %w", parseErr)
		}
	})
	return parsedABI, parseErr
}

// MustABI is ABI for package-level initialization; it panics on a broken
// embedded ABI
func MustABI() abi.ABI {
	parsed, err := ABI()
	if err != nil {
		panic(err)
	}
	return parsed
}
