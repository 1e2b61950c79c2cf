package helpers

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/protectedpay/protectedpay-api/internal/constants"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(constants.NativeDecimals), nil)

// ParseAmount converts a decimal amount of the native currency ("1.5") into wei.
// Negative and zero amounts parse successfully; callers that send value use
// ParsePositiveAmount.
func ParseAmount(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	negative := false
	if strings.HasPrefix(amount, "-") {
		negative = true
		amount = amount[1:]
	}

	whole, frac, hasDot := strings.Cut(amount, ".")
	if whole == "" && (!hasDot || frac == "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if len(frac) > constants.NativeDecimals {
		return nil, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, constants.NativeDecimals)
	}

	digits := whole + frac + strings.Repeat("0", constants.NativeDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if negative {
		wei.Neg(wei)
	}
	return wei, nil
}

// ParsePositiveAmount parses an amount and rejects anything at or below zero
func ParsePositiveAmount(amount string) (*big.Int, error) {
	wei, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if wei.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return wei, nil
}

// FormatAmount renders wei as a decimal amount of the native currency without
// trailing zeros
func FormatAmount(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	abs := new(big.Int).Abs(wei)
	whole, frac := new(big.Int).QuoRem(abs, weiPerUnit, new(big.Int))

	out := whole.String()
	if frac.Sign() != 0 {
		fracStr := fmt.Sprintf("%0*s", constants.NativeDecimals, frac.String())
		out += "." + strings.TrimRight(fracStr, "0")
	}
	if wei.Sign() < 0 {
		out = "-" + out
	}
	return out
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
