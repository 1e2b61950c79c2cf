package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"go.uber.org/zap"
)

// addressOrConnected parses address, falling back to the connected account
// when it is empty
func addressOrConnected(wallet interfaces.WalletSession, op, address string) (common.Address, error) {
	if address == "" {
		status := wallet.Status()
		if !status.IsConnected || status.Address == nil {
			return common.Address{}, protectedpay.NewError(protectedpay.KindWalletNotConnected, op, protectedpay.ErrWalletNotConnected)
		}
		return *status.Address, nil
	}
	parsed, err := helpers.ParseAddress(address)
	if err != nil {
		return common.Address{}, protectedpay.NewError(protectedpay.KindInvalidInput, op, err)
	}
	return parsed, nil
}

// parseID parses a bytes32 transfer, payment or pot id
func parseID(op, id string) (common.Hash, error) {
	parsed, err := helpers.ParseTransferID(id)
	if err != nil {
		return common.Hash{}, protectedpay.NewError(protectedpay.KindInvalidInput, op, err)
	}
	return parsed, nil
}

func invalidInput(op string, err error) error {
	return protectedpay.NewError(protectedpay.KindInvalidInput, op, err)
}

// refreshBalance updates the wallet balance after a write; a failure only
// leaves a stale balance behind
func refreshBalance(ctx context.Context, wallet interfaces.WalletSession, log *zap.Logger) {
	if err := wallet.RefreshBalance(ctx); err != nil {
		log.Warn("Failed to refresh wallet balance", zap.Error(err))
	}
}
